package pixel

// Pack writes p into buf at byte offset rowStart, pixel index x
// within the row, according to f's bit layout. Sub-byte formats pack
// LSB-first within a byte (Alpha4 additionally packs low nibble
// first, i.e. even x in bits 0-3, odd x in bits 4-7).
func Pack(buf []byte, rowStart, x int, f Format, p Pixel) {
	switch f {
	case RGB888:
		o := rowStart + x*3
		buf[o], buf[o+1], buf[o+2] = p.R, p.G, p.B
	case RGBA8888:
		o := rowStart + x*4
		buf[o], buf[o+1], buf[o+2], buf[o+3] = p.R, p.G, p.B, p.A
	case Alpha8:
		buf[rowStart+x] = p.A
	case Alpha4:
		byteIdx := rowStart + x/2
		shift := uint(x%2) * 4
		v := NarrowAlpha(p.A, f) & 0x0F
		buf[byteIdx] = (buf[byteIdx] &^ (0x0F << shift)) | (v << shift)
	case Alpha2:
		byteIdx := rowStart + x/4
		shift := uint(x%4) * 2
		v := NarrowAlpha(p.A, f) & 0x03
		buf[byteIdx] = (buf[byteIdx] &^ (0x03 << shift)) | (v << shift)
	case Alpha1:
		byteIdx := rowStart + x/8
		shift := uint(x % 8)
		v := NarrowAlpha(p.A, f) & 0x01
		buf[byteIdx] = (buf[byteIdx] &^ (1 << shift)) | (v << shift)
	}
}

// Unpack reads the pixel at index x within the row starting at
// rowStart, the inverse of Pack.
func Unpack(buf []byte, rowStart, x int, f Format) Pixel {
	p := Pixel{Format: f}
	switch f {
	case RGB888:
		o := rowStart + x*3
		p.R, p.G, p.B, p.A = buf[o], buf[o+1], buf[o+2], 255
	case RGBA8888:
		o := rowStart + x*4
		p.R, p.G, p.B, p.A = buf[o], buf[o+1], buf[o+2], buf[o+3]
	case Alpha8:
		p.A = buf[rowStart+x]
	case Alpha4:
		byteIdx := rowStart + x/2
		shift := uint(x%2) * 4
		p.A = WidenAlpha((buf[byteIdx]>>shift)&0x0F, f)
	case Alpha2:
		byteIdx := rowStart + x/4
		shift := uint(x%4) * 2
		p.A = WidenAlpha((buf[byteIdx]>>shift)&0x03, f)
	case Alpha1:
		byteIdx := rowStart + x/8
		shift := uint(x % 8)
		p.A = WidenAlpha((buf[byteIdx]>>shift)&0x01, f)
	}
	return p
}
