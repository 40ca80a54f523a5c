package glfake

import (
	"math"

	"github.com/gogpu/glkit/driver"
)

type texture struct {
	target    driver.Enum
	levels    int
	format    driver.Enum
	width     int
	height    int
	depth     int
	samples   int
	immutable bool
	buffer    driver.Buffer

	params  map[driver.Enum]int32
	fparams map[driver.Enum]float32
	images  map[int]*image

	mipmapsGenerated int
}

type image struct {
	pixelSize  int
	width      int
	height     int
	depth      int
	compressed bool
	data       []byte
}

// TextureInfo describes a texture's storage.
type TextureInfo struct {
	Target         driver.Enum
	Levels         int
	InternalFormat driver.Enum
	Width          int
	Height         int
	Depth          int
	Samples        int
	Buffer         driver.Buffer
	Mipmaps        int
}

// TextureInfo returns the storage description of a texture.
func (d *Driver) TextureInfo(t driver.Texture) (TextureInfo, bool) {
	tex, ok := d.textures[t]
	if !ok {
		return TextureInfo{}, false
	}
	return TextureInfo{
		Target:         tex.target,
		Levels:         tex.levels,
		InternalFormat: tex.format,
		Width:          tex.width,
		Height:         tex.height,
		Depth:          tex.depth,
		Samples:        tex.samples,
		Buffer:         tex.buffer,
		Mipmaps:        tex.mipmapsGenerated,
	}, true
}

// TextureParameter returns an integer parameter set on a texture.
func (d *Driver) TextureParameter(t driver.Texture, pname driver.Enum) (int32, bool) {
	tex, ok := d.textures[t]
	if !ok {
		return 0, false
	}
	v, ok := tex.params[pname]
	return v, ok
}

// TextureParameterFloat returns a float parameter set on a texture.
func (d *Driver) TextureParameterFloat(t driver.Texture, pname driver.Enum) (float32, bool) {
	tex, ok := d.textures[t]
	if !ok {
		return 0, false
	}
	v, ok := tex.fparams[pname]
	return v, ok
}

// TextureImage returns the stored bytes of one texture level.
func (d *Driver) TextureImage(t driver.Texture, level int) []byte {
	tex, ok := d.textures[t]
	if !ok {
		return nil
	}
	if img := tex.images[level]; img != nil {
		return img.data
	}
	return nil
}

func (d *Driver) lookupTexture(fn string, t driver.Texture) *texture {
	tex, ok := d.textures[t]
	if !ok {
		d.fail(driver.INVALID_OPERATION, "%s: %d is not a texture", fn, t)
		return nil
	}
	return tex
}

func (d *Driver) CreateTexture(target driver.Enum) driver.Texture {
	d.call("CreateTexture")
	t := driver.Texture(d.name())
	d.textures[t] = &texture{
		target:  target,
		params:  make(map[driver.Enum]int32),
		fparams: make(map[driver.Enum]float32),
		images:  make(map[int]*image),
	}
	return t
}

func (d *Driver) DeleteTexture(t driver.Texture) {
	d.call("DeleteTexture")
	delete(d.textures, t)
	for unit, bound := range d.State.TextureUnits {
		if bound == t {
			delete(d.State.TextureUnits, unit)
		}
	}
}

func (d *Driver) allocate(fn string, t driver.Texture, targets []driver.Enum, levels, samples int, format driver.Enum, w, h, depth int) {
	tex := d.lookupTexture(fn, t)
	if tex == nil {
		return
	}
	allowed := false
	for _, target := range targets {
		if tex.target == target {
			allowed = true
		}
	}
	switch {
	case !allowed:
		d.fail(driver.INVALID_OPERATION, "%s: wrong target 0x%X", fn, uint32(tex.target))
		return
	case tex.immutable:
		d.fail(driver.INVALID_OPERATION, "%s: texture %d storage is immutable", fn, t)
		return
	case levels < 1 || samples < 1 || w < 1 || h < 1 || depth < 1:
		d.fail(driver.INVALID_VALUE, "%s: levels %d samples %d size %dx%dx%d", fn, levels, samples, w, h, depth)
		return
	case levels > 1 && levels > int(math.Log2(float64(max(w, h, depth))))+1:
		d.fail(driver.INVALID_OPERATION, "%s: %d levels exceed the mip chain of %dx%dx%d", fn, levels, w, h, depth)
		return
	case tex.target == driver.TEXTURE_CUBE_MAP && w != h:
		d.fail(driver.INVALID_VALUE, "%s: cube map faces must be square", fn)
		return
	}
	tex.levels = levels
	tex.samples = samples
	tex.format = format
	tex.width, tex.height, tex.depth = w, h, depth
	tex.immutable = !d.MutableStorage
}

func (d *Driver) TextureStorage1D(t driver.Texture, levels int, internalFormat driver.Enum, width int) {
	d.call("TextureStorage1D")
	d.allocate("TextureStorage1D", t, []driver.Enum{driver.TEXTURE_1D}, levels, 1, internalFormat, width, 1, 1)
}

func (d *Driver) TextureStorage2D(t driver.Texture, levels int, internalFormat driver.Enum, width, height int) {
	d.call("TextureStorage2D")
	d.allocate("TextureStorage2D", t, []driver.Enum{driver.TEXTURE_2D, driver.TEXTURE_1D_ARRAY,
		driver.TEXTURE_RECTANGLE, driver.TEXTURE_CUBE_MAP}, levels, 1, internalFormat, width, height, 1)
	if tex := d.textures[t]; tex != nil && tex.target == driver.TEXTURE_CUBE_MAP && tex.levels > 0 {
		tex.depth = 6
	}
}

func (d *Driver) TextureStorage2DMultisample(t driver.Texture, samples int, internalFormat driver.Enum, width, height int, fixedLocations bool) {
	d.call("TextureStorage2DMultisample")
	d.allocate("TextureStorage2DMultisample", t, []driver.Enum{driver.TEXTURE_2D_MULTISAMPLE},
		1, samples, internalFormat, width, height, 1)
}

func (d *Driver) TextureStorage3D(t driver.Texture, levels int, internalFormat driver.Enum, width, height, depth int) {
	d.call("TextureStorage3D")
	d.allocate("TextureStorage3D", t, []driver.Enum{driver.TEXTURE_3D, driver.TEXTURE_2D_ARRAY,
		driver.TEXTURE_CUBE_MAP_ARRAY}, levels, 1, internalFormat, width, height, depth)
}

func (d *Driver) TextureStorage3DMultisample(t driver.Texture, samples int, internalFormat driver.Enum, width, height, depth int, fixedLocations bool) {
	d.call("TextureStorage3DMultisample")
	d.allocate("TextureStorage3DMultisample", t, []driver.Enum{driver.TEXTURE_2D_MULTISAMPLE_ARRAY},
		1, samples, internalFormat, width, height, depth)
}

func (d *Driver) TextureBuffer(t driver.Texture, internalFormat driver.Enum, b driver.Buffer) {
	d.call("TextureBuffer")
	tex := d.lookupTexture("TextureBuffer", t)
	if tex == nil {
		return
	}
	if tex.target != driver.TEXTURE_BUFFER {
		d.fail(driver.INVALID_OPERATION, "TextureBuffer: texture %d is not a buffer texture", t)
		return
	}
	if b.Valid() && d.lookupBuffer("TextureBuffer", b) == nil {
		return
	}
	tex.format = internalFormat
	tex.buffer = b
}

func (d *Driver) levelSize(tex *texture, level int) (w, h, depth int) {
	w = max(1, tex.width>>level)
	h, depth = tex.height, tex.depth
	switch tex.target {
	case driver.TEXTURE_2D, driver.TEXTURE_RECTANGLE, driver.TEXTURE_CUBE_MAP,
		driver.TEXTURE_2D_ARRAY, driver.TEXTURE_CUBE_MAP_ARRAY, driver.TEXTURE_3D:
		h = max(1, tex.height>>level)
	}
	if tex.target == driver.TEXTURE_3D {
		depth = max(1, tex.depth>>level)
	}
	return w, h, depth
}

func (d *Driver) subImage(fn string, t driver.Texture, level, x, y, z, w, h, depth int, format, typ driver.Enum, compressedSize int, compressed bool, data []byte) {
	tex := d.lookupTexture(fn, t)
	if tex == nil {
		return
	}
	if tex.levels == 0 {
		d.fail(driver.INVALID_OPERATION, "%s: texture %d has no storage", fn, t)
		return
	}
	if level < 0 || level >= tex.levels {
		d.fail(driver.INVALID_VALUE, "%s: level %d out of range", fn, level)
		return
	}
	lw, lh, ld := d.levelSize(tex, level)
	if x < 0 || y < 0 || z < 0 || w < 0 || h < 0 || depth < 0 || x+w > lw || y+h > lh || z+depth > ld {
		d.fail(driver.INVALID_VALUE, "%s: region %d,%d,%d %dx%dx%d outside level %dx%dx%d", fn, x, y, z, w, h, depth, lw, lh, ld)
		return
	}
	if data == nil {
		return
	}
	if compressed {
		if len(data) < compressedSize {
			d.fail(driver.INVALID_VALUE, "%s: %d bytes supplied, imageSize %d", fn, len(data), compressedSize)
			return
		}
		tex.images[level] = &image{compressed: true, data: append([]byte(nil), data[:compressedSize]...)}
		return
	}
	px := PixelSize(format, typ)
	if px == 0 {
		d.fail(driver.INVALID_ENUM, "%s: format 0x%X type 0x%X", fn, uint32(format), uint32(typ))
		return
	}
	img := tex.images[level]
	if img == nil || img.compressed || img.pixelSize != px {
		img = &image{pixelSize: px, width: lw, height: lh, depth: ld, data: make([]byte, lw*lh*ld*px)}
		tex.images[level] = img
	}
	rowSize := w * px
	stride := alignUp(rowSize, int(d.State.UnpackAlignment))
	need := stride*(h*depth-1) + rowSize
	if w == 0 || h == 0 || depth == 0 {
		return
	}
	if len(data) < need {
		d.fail(driver.INVALID_OPERATION, "%s: %d bytes supplied, %d required", fn, len(data), need)
		return
	}
	for k := 0; k < depth; k++ {
		for j := 0; j < h; j++ {
			src := data[(k*h+j)*stride:]
			dst := img.data[(((z+k)*lh+(y+j))*lw+x)*px:]
			copy(dst[:rowSize], src[:rowSize])
		}
	}
}

func (d *Driver) TextureSubImage1D(t driver.Texture, level, x, width int, format, typ driver.Enum, data []byte) {
	d.call("TextureSubImage1D")
	d.subImage("TextureSubImage1D", t, level, x, 0, 0, width, 1, 1, format, typ, 0, false, data)
}

func (d *Driver) TextureSubImage2D(t driver.Texture, level, x, y, width, height int, format, typ driver.Enum, data []byte) {
	d.call("TextureSubImage2D")
	d.subImage("TextureSubImage2D", t, level, x, y, 0, width, height, 1, format, typ, 0, false, data)
}

func (d *Driver) TextureSubImage3D(t driver.Texture, level, x, y, z, width, height, depth int, format, typ driver.Enum, data []byte) {
	d.call("TextureSubImage3D")
	d.subImage("TextureSubImage3D", t, level, x, y, z, width, height, depth, format, typ, 0, false, data)
}

func (d *Driver) CompressedTextureSubImage1D(t driver.Texture, level, x, width int, format driver.Enum, imageSize int, data []byte) {
	d.call("CompressedTextureSubImage1D")
	d.subImage("CompressedTextureSubImage1D", t, level, x, 0, 0, width, 1, 1, format, 0, imageSize, true, data)
}

func (d *Driver) CompressedTextureSubImage2D(t driver.Texture, level, x, y, width, height int, format driver.Enum, imageSize int, data []byte) {
	d.call("CompressedTextureSubImage2D")
	d.subImage("CompressedTextureSubImage2D", t, level, x, y, 0, width, height, 1, format, 0, imageSize, true, data)
}

func (d *Driver) CompressedTextureSubImage3D(t driver.Texture, level, x, y, z, width, height, depth int, format driver.Enum, imageSize int, data []byte) {
	d.call("CompressedTextureSubImage3D")
	d.subImage("CompressedTextureSubImage3D", t, level, x, y, z, width, height, depth, format, 0, imageSize, true, data)
}

func (d *Driver) GenerateTextureMipmap(t driver.Texture) {
	d.call("GenerateTextureMipmap")
	tex := d.lookupTexture("GenerateTextureMipmap", t)
	if tex == nil {
		return
	}
	if tex.target == driver.TEXTURE_BUFFER || tex.target == driver.TEXTURE_2D_MULTISAMPLE ||
		tex.target == driver.TEXTURE_2D_MULTISAMPLE_ARRAY || tex.target == driver.TEXTURE_RECTANGLE {
		d.fail(driver.INVALID_OPERATION, "GenerateTextureMipmap: target 0x%X has no mipmaps", uint32(tex.target))
		return
	}
	tex.mipmapsGenerated++
}

func (d *Driver) TextureParameteri(t driver.Texture, pname driver.Enum, v int32) {
	d.call("TextureParameteri")
	tex := d.lookupTexture("TextureParameteri", t)
	if tex == nil {
		return
	}
	if tex.target == driver.TEXTURE_BUFFER {
		d.fail(driver.INVALID_ENUM, "TextureParameteri: buffer textures have no parameters")
		return
	}
	tex.params[pname] = v
}

func (d *Driver) TextureParameterf(t driver.Texture, pname driver.Enum, v float32) {
	d.call("TextureParameterf")
	tex := d.lookupTexture("TextureParameterf", t)
	if tex == nil {
		return
	}
	if tex.target == driver.TEXTURE_BUFFER {
		d.fail(driver.INVALID_ENUM, "TextureParameterf: buffer textures have no parameters")
		return
	}
	tex.fparams[pname] = v
}

func (d *Driver) GetTextureParameteri(t driver.Texture, pname driver.Enum) int32 {
	d.call("GetTextureParameteri")
	tex := d.lookupTexture("GetTextureParameteri", t)
	if tex == nil {
		return 0
	}
	if pname == driver.TEXTURE_IMMUTABLE_FORMAT {
		if tex.immutable {
			return driver.TRUE
		}
		return driver.FALSE
	}
	return tex.params[pname]
}

func (d *Driver) GetTextureImage(t driver.Texture, level int, format, typ driver.Enum, dst []byte) {
	d.call("GetTextureImage")
	tex := d.lookupTexture("GetTextureImage", t)
	if tex == nil {
		return
	}
	if level < 0 || level >= tex.levels {
		d.fail(driver.INVALID_VALUE, "GetTextureImage: level %d out of range", level)
		return
	}
	img := tex.images[level]
	if img != nil && img.compressed {
		d.fail(driver.INVALID_OPERATION, "GetTextureImage: level %d is compressed", level)
		return
	}
	px := PixelSize(format, typ)
	if px == 0 {
		d.fail(driver.INVALID_ENUM, "GetTextureImage: format 0x%X type 0x%X", uint32(format), uint32(typ))
		return
	}
	w, h, depth := d.levelSize(tex, level)
	rowSize := w * px
	stride := alignUp(rowSize, int(d.State.PackAlignment))
	need := stride*(h*depth-1) + rowSize
	if len(dst) < need {
		d.fail(driver.INVALID_OPERATION, "GetTextureImage: %d bytes supplied, %d required", len(dst), need)
		return
	}
	for row := 0; row < h*depth; row++ {
		out := dst[row*stride : row*stride+rowSize]
		if img == nil || img.pixelSize != px {
			clear(out)
			continue
		}
		copy(out, img.data[row*rowSize:])
	}
}

func (d *Driver) BindTexture(target driver.Enum, t driver.Texture) {
	d.call("BindTexture")
	if t.Valid() && d.lookupTexture("BindTexture", t) == nil {
		return
	}
	d.State.Textures[target] = t
}

func (d *Driver) BindTextureUnit(unit uint32, t driver.Texture) {
	d.call("BindTextureUnit")
	if t.Valid() && d.lookupTexture("BindTextureUnit", t) == nil {
		return
	}
	if !t.Valid() {
		delete(d.State.TextureUnits, unit)
		return
	}
	d.State.TextureUnits[unit] = t
}

func (d *Driver) BindTextures(first uint32, textures []driver.Texture) {
	d.call("BindTextures")
	for _, t := range textures {
		if t.Valid() && d.lookupTexture("BindTextures", t) == nil {
			return
		}
	}
	for i, t := range textures {
		unit := first + uint32(i)
		if !t.Valid() {
			delete(d.State.TextureUnits, unit)
			continue
		}
		d.State.TextureUnits[unit] = t
	}
}

func (d *Driver) PixelStorei(pname driver.Enum, v int32) {
	d.call("PixelStorei")
	if v != 1 && v != 2 && v != 4 && v != 8 {
		d.fail(driver.INVALID_VALUE, "PixelStorei: alignment %d", v)
		return
	}
	switch pname {
	case driver.UNPACK_ALIGNMENT:
		d.State.UnpackAlignment = v
	case driver.PACK_ALIGNMENT:
		d.State.PackAlignment = v
	default:
		d.fail(driver.INVALID_ENUM, "PixelStorei: pname 0x%X", uint32(pname))
	}
}

// PixelSize returns the size in bytes of one pixel transferred with the
// given client format and type, or 0 for an unknown combination.
func PixelSize(format, typ driver.Enum) int {
	switch typ {
	case driver.UNSIGNED_BYTE_3_3_2, driver.UNSIGNED_BYTE_2_3_3_REV:
		return 1
	case driver.UNSIGNED_SHORT_4_4_4_4, driver.UNSIGNED_SHORT_5_5_5_1, driver.UNSIGNED_SHORT_5_6_5,
		driver.UNSIGNED_SHORT_5_6_5_REV, driver.UNSIGNED_SHORT_4_4_4_4_REV, driver.UNSIGNED_SHORT_1_5_5_5_REV:
		return 2
	case driver.UNSIGNED_INT_8_8_8_8, driver.UNSIGNED_INT_8_8_8_8_REV, driver.UNSIGNED_INT_10_10_10_2,
		driver.UNSIGNED_INT_2_10_10_10_REV, driver.UNSIGNED_INT_24_8:
		return 4
	case driver.FLOAT_32_UNSIGNED_INT_24_8_REV:
		return 8
	}
	var size int
	switch typ {
	case driver.BYTE, driver.UNSIGNED_BYTE:
		size = 1
	case driver.SHORT, driver.UNSIGNED_SHORT, driver.HALF_FLOAT:
		size = 2
	case driver.INT, driver.UNSIGNED_INT, driver.FLOAT:
		size = 4
	default:
		return 0
	}
	switch format {
	case driver.RED, driver.RED_INTEGER, driver.DEPTH_COMPONENT, driver.STENCIL_INDEX:
		return size
	case driver.RG, driver.RG_INTEGER:
		return 2 * size
	case driver.RGB, driver.BGR, driver.RGB_INTEGER:
		return 3 * size
	case driver.RGBA, driver.BGRA, driver.RGBA_INTEGER:
		return 4 * size
	}
	return 0
}

func alignUp(n, alignment int) int {
	if alignment <= 1 {
		return n
	}
	return (n + alignment - 1) / alignment * alignment
}
