package hvm

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
)

// magicNumber and moduleVersion identify a hotaru bytecode module file.
// The version packs (major, minor, revision) as (major<<22)|(minor<<12)|rev;
// 0x1000 is version 0.1.0.
const (
	magicNumber   uint32 = 0xFBADF00D
	moduleVersion uint32 = 0x1000
	instByteSize         = 16 // Opcode (int64-width tag) + Word, little-endian
)

// Module is a sequence of instructions plus a static-data region addressed
// by some instructions' operands.
type Module struct {
	Items      []Inst
	StaticData []byte
}

// Append adds inst to the end of the module and returns its index.
func (m *Module) Append(inst Inst) uint32 {
	m.Items = append(m.Items, inst)
	return uint32(len(m.Items) - 1)
}

// Disassemble writes a human-readable instruction listing to w.
func (m *Module) Disassemble(w io.Writer) {
	for i, inst := range m.Items {
		info := opcodeInfos[inst.Type]
		if info.hasOperand {
			fmt.Fprintf(w, "0x%X %s(int(%d)|float(%f))\n", i, inst.Type, inst.Op.AsI64(), inst.Op.AsF64())
		} else {
			fmt.Fprintf(w, "0x%X %s\n", i, inst.Type)
		}
	}
}

type moduleFileHeader struct {
	Magic           uint32
	Version         uint32
	InstsAmount     uint32
	Pad             uint32
	ProgramStart    uint64
	ProgramSize     uint64
	StaticDataStart uint64
	StaticDataSize  uint64
}

// Save writes the module to path in hotaru's binary module format: a
// fixed header followed by the instruction stream and then the static
// data region, all little-endian.
func (m *Module) Save(path string) error {
	header := moduleFileHeader{
		Magic:           magicNumber,
		Version:         moduleVersion,
		InstsAmount:     uint32(len(m.Items)),
		ProgramStart:    0,
		ProgramSize:     uint64(len(m.Items)) * instByteSize,
		StaticDataStart: uint64(len(m.Items)) * instByteSize,
		StaticDataSize:  uint64(len(m.StaticData)),
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := binary.Write(f, binary.LittleEndian, header); err != nil {
		return err
	}
	for _, inst := range m.Items {
		if err := binary.Write(f, binary.LittleEndian, uint64(inst.Type)); err != nil {
			return err
		}
		if err := binary.Write(f, binary.LittleEndian, uint64(inst.Op)); err != nil {
			return err
		}
	}
	if len(m.StaticData) > 0 {
		if _, err := f.Write(m.StaticData); err != nil {
			return err
		}
	}
	return nil
}

// Load reads a module previously written by Save.
func Load(path string) (*Module, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	const headerSize = 48
	if len(raw) < headerSize {
		return nil, fmt.Errorf("hvm: module file %q is too short for a header", path)
	}

	magic := binary.LittleEndian.Uint32(raw[0:4])
	version := binary.LittleEndian.Uint32(raw[4:8])
	instsAmount := binary.LittleEndian.Uint32(raw[8:12])
	programStart := binary.LittleEndian.Uint64(raw[16:24])
	staticDataStart := binary.LittleEndian.Uint64(raw[32:40])
	staticDataSize := binary.LittleEndian.Uint64(raw[40:48])

	if magic != magicNumber {
		return nil, fmt.Errorf("hvm: module file %q has bad magic number 0x%X", path, magic)
	}
	if version != moduleVersion {
		return nil, fmt.Errorf("hvm: module file %q has unsupported version 0x%X", path, version)
	}

	body := raw[headerSize:]
	instsOffset := programStart
	m := &Module{}
	for i := uint32(0); i < instsAmount; i++ {
		off := instsOffset + uint64(i)*instByteSize
		opType := binary.LittleEndian.Uint64(body[off : off+8])
		op := binary.LittleEndian.Uint64(body[off+8 : off+16])
		m.Items = append(m.Items, Inst{Type: Opcode(opType), Op: Word(op)})
	}

	if staticDataSize > 0 {
		m.StaticData = append([]byte(nil), body[staticDataStart:staticDataStart+staticDataSize]...)
	}

	return m, nil
}
