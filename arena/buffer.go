package arena

import "os"

// Buffer is a growable byte array whose backing storage is provided by a
// ByteArena: growth copies the live bytes into a fresh arena allocation and
// abandons the old one, which the arena simply never revisits.
type Buffer struct {
	data []byte
}

// Append copies p onto the end of the buffer, growing the backing storage
// through a if the current allocation has no room left.
func (b *Buffer) Append(a *ByteArena, p []byte) {
	if len(p) == 0 {
		return
	}
	needed := len(b.data) + len(p)
	if cap(b.data) < needed {
		newCap := cap(b.data)*2 + len(p)
		if newCap < 32+len(p) {
			newCap = 32 + len(p)
		}
		fresh := a.Alloc(newCap)[:len(b.data)]
		copy(fresh, b.data)
		b.data = fresh
	}
	b.data = append(b.data, p...)
}

// Bytes returns the buffer's current contents as a non-owning slice.
func (b *Buffer) Bytes() []byte {
	return b.data
}

// Write implements io.Writer by appending p directly to the buffer's own
// slice, bypassing the arena entirely. It lets a Buffer stand in wherever an
// io.Writer is expected (e.g. hvm.Module.Disassemble) without callers having
// to thread an arena through just to collect text.
func (b *Buffer) Write(p []byte) (int, error) {
	b.data = append(b.data, p...)
	return len(p), nil
}

// Slice returns the non-owning sub-range [start:end) of the buffer.
func (b *Buffer) Slice(start, end int) []byte {
	return b.data[start:end]
}

// SaveToFile writes the buffer's contents to path, creating or truncating it.
func (b *Buffer) SaveToFile(path string) error {
	return os.WriteFile(path, b.data, 0o644)
}

// LoadFileIntoArena reads the whole file at path into bytes allocated from a.
func LoadFileIntoArena(path string, a *ByteArena) ([]byte, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	dst := a.Alloc(len(raw))
	copy(dst, raw)
	return dst, nil
}
