package driver

// OpenGL 4.6 core constants used by glkit.
const (
	FALSE = 0
	TRUE  = 1
	NONE  = 0

	NO_ERROR                      = 0x0
	INVALID_ENUM                  = 0x0500
	INVALID_VALUE                 = 0x0501
	INVALID_OPERATION             = 0x0502
	OUT_OF_MEMORY                 = 0x0505
	INVALID_FRAMEBUFFER_OPERATION = 0x0506

	VENDOR                   = 0x1F00
	RENDERER                 = 0x1F01
	VERSION                  = 0x1F02
	SHADING_LANGUAGE_VERSION = 0x8B8C

	// Buffer storage and mapping flags.
	MAP_READ_BIT              = 0x0001
	MAP_WRITE_BIT             = 0x0002
	MAP_INVALIDATE_RANGE_BIT  = 0x0004
	MAP_INVALIDATE_BUFFER_BIT = 0x0008
	MAP_FLUSH_EXPLICIT_BIT    = 0x0010
	MAP_UNSYNCHRONIZED_BIT    = 0x0020
	MAP_PERSISTENT_BIT        = 0x0040
	MAP_COHERENT_BIT          = 0x0080
	DYNAMIC_STORAGE_BIT       = 0x0100
	CLIENT_STORAGE_BIT        = 0x0200

	// Buffer targets.
	ARRAY_BUFFER              = 0x8892
	ELEMENT_ARRAY_BUFFER      = 0x8893
	PIXEL_PACK_BUFFER         = 0x88EB
	PIXEL_UNPACK_BUFFER       = 0x88EC
	UNIFORM_BUFFER            = 0x8A11
	TEXTURE_BUFFER            = 0x8C2A
	TRANSFORM_FEEDBACK_BUFFER = 0x8C8E
	COPY_READ_BUFFER          = 0x8F36
	COPY_WRITE_BUFFER         = 0x8F37
	DRAW_INDIRECT_BUFFER      = 0x8F3F
	SHADER_STORAGE_BUFFER     = 0x90D2
	DISPATCH_INDIRECT_BUFFER  = 0x90EE
	QUERY_BUFFER              = 0x9192
	ATOMIC_COUNTER_BUFFER     = 0x92C0

	// Data types.
	BYTE           = 0x1400
	UNSIGNED_BYTE  = 0x1401
	SHORT          = 0x1402
	UNSIGNED_SHORT = 0x1403
	INT            = 0x1404
	UNSIGNED_INT   = 0x1405
	FLOAT          = 0x1406
	DOUBLE         = 0x140A
	HALF_FLOAT     = 0x140B
	FIXED          = 0x140C

	// Packed pixel types.
	UNSIGNED_BYTE_3_3_2            = 0x8032
	UNSIGNED_SHORT_4_4_4_4         = 0x8033
	UNSIGNED_SHORT_5_5_5_1         = 0x8034
	UNSIGNED_INT_8_8_8_8           = 0x8035
	UNSIGNED_INT_10_10_10_2        = 0x8036
	UNSIGNED_BYTE_2_3_3_REV        = 0x8362
	UNSIGNED_SHORT_5_6_5           = 0x8363
	UNSIGNED_SHORT_5_6_5_REV       = 0x8364
	UNSIGNED_SHORT_4_4_4_4_REV     = 0x8365
	UNSIGNED_SHORT_1_5_5_5_REV     = 0x8366
	UNSIGNED_INT_8_8_8_8_REV       = 0x8367
	UNSIGNED_INT_2_10_10_10_REV    = 0x8368
	UNSIGNED_INT_24_8              = 0x84FA
	FLOAT_32_UNSIGNED_INT_24_8_REV = 0x8DAD

	// Texture targets.
	TEXTURE_1D                   = 0x0DE0
	TEXTURE_2D                   = 0x0DE1
	TEXTURE_3D                   = 0x806F
	TEXTURE_RECTANGLE            = 0x84F5
	TEXTURE_CUBE_MAP             = 0x8513
	TEXTURE_1D_ARRAY             = 0x8C18
	TEXTURE_2D_ARRAY             = 0x8C1A
	TEXTURE_CUBE_MAP_ARRAY       = 0x9009
	TEXTURE_2D_MULTISAMPLE       = 0x9100
	TEXTURE_2D_MULTISAMPLE_ARRAY = 0x9102

	// Texture parameters.
	TEXTURE_BORDER_COLOR       = 0x1004
	TEXTURE_MAG_FILTER         = 0x2800
	TEXTURE_MIN_FILTER         = 0x2801
	TEXTURE_WRAP_S             = 0x2802
	TEXTURE_WRAP_T             = 0x2803
	TEXTURE_WRAP_R             = 0x8072
	TEXTURE_MIN_LOD            = 0x813A
	TEXTURE_MAX_LOD            = 0x813B
	TEXTURE_BASE_LEVEL         = 0x813C
	TEXTURE_MAX_LEVEL          = 0x813D
	TEXTURE_LOD_BIAS           = 0x8501
	TEXTURE_COMPARE_MODE       = 0x884C
	TEXTURE_COMPARE_FUNC       = 0x884D
	TEXTURE_SWIZZLE_R          = 0x8E42
	TEXTURE_SWIZZLE_G          = 0x8E43
	TEXTURE_SWIZZLE_B          = 0x8E44
	TEXTURE_SWIZZLE_A          = 0x8E45
	TEXTURE_SWIZZLE_RGBA       = 0x8E46
	DEPTH_STENCIL_TEXTURE_MODE = 0x90EA
	TEXTURE_IMMUTABLE_FORMAT   = 0x912F

	// Filters and wrap modes.
	NEAREST                = 0x2600
	LINEAR                 = 0x2601
	NEAREST_MIPMAP_NEAREST = 0x2700
	LINEAR_MIPMAP_NEAREST  = 0x2701
	NEAREST_MIPMAP_LINEAR  = 0x2702
	LINEAR_MIPMAP_LINEAR   = 0x2703
	REPEAT                 = 0x2901
	CLAMP_TO_BORDER        = 0x812D
	CLAMP_TO_EDGE          = 0x812F
	MIRRORED_REPEAT        = 0x8370
	MIRROR_CLAMP_TO_EDGE   = 0x8743

	// Pixel formats.
	STENCIL_INDEX   = 0x1901
	DEPTH_COMPONENT = 0x1902
	RED             = 0x1903
	RGB             = 0x1907
	RGBA            = 0x1908
	BGR             = 0x80E0
	BGRA            = 0x80E1
	RG              = 0x8227
	RG_INTEGER      = 0x8228
	DEPTH_STENCIL   = 0x84F9
	RED_INTEGER     = 0x8D94
	RGB_INTEGER     = 0x8D98
	RGBA_INTEGER    = 0x8D99

	// Sized internal formats.
	R3_G3_B2           = 0x2A10
	RGB4               = 0x804F
	RGB5               = 0x8050
	RGB8               = 0x8051
	RGB10              = 0x8052
	RGB12              = 0x8053
	RGB16              = 0x8054
	RGBA2              = 0x8055
	RGBA4              = 0x8056
	RGB5_A1            = 0x8057
	RGBA8              = 0x8058
	RGB10_A2           = 0x8059
	RGBA12             = 0x805A
	RGBA16             = 0x805B
	DEPTH_COMPONENT16  = 0x81A5
	DEPTH_COMPONENT24  = 0x81A6
	DEPTH_COMPONENT32  = 0x81A7
	R8                 = 0x8229
	R16                = 0x822A
	RG8                = 0x822B
	RG16               = 0x822C
	R16F               = 0x822D
	R32F               = 0x822E
	RG16F              = 0x822F
	RG32F              = 0x8230
	R8I                = 0x8231
	R8UI               = 0x8232
	R16I               = 0x8233
	R16UI              = 0x8234
	R32I               = 0x8235
	R32UI              = 0x8236
	RG8I               = 0x8237
	RG8UI              = 0x8238
	RG16I              = 0x8239
	RG16UI             = 0x823A
	RG32I              = 0x823B
	RG32UI             = 0x823C
	RGBA32F            = 0x8814
	RGB32F             = 0x8815
	RGBA16F            = 0x881A
	RGB16F             = 0x881B
	DEPTH24_STENCIL8   = 0x88F0
	R11F_G11F_B10F     = 0x8C3A
	RGB9_E5            = 0x8C3D
	SRGB8              = 0x8C41
	SRGB8_ALPHA8       = 0x8C43
	DEPTH_COMPONENT32F = 0x8CAC
	DEPTH32F_STENCIL8  = 0x8CAD
	STENCIL_INDEX8     = 0x8D48
	RGB565             = 0x8D62
	RGBA32UI           = 0x8D70
	RGB32UI            = 0x8D71
	RGBA16UI           = 0x8D76
	RGB16UI            = 0x8D77
	RGBA8UI            = 0x8D7C
	RGB8UI             = 0x8D7D
	RGBA32I            = 0x8D82
	RGB32I             = 0x8D83
	RGBA16I            = 0x8D88
	RGB16I             = 0x8D89
	RGBA8I             = 0x8D8E
	RGB8I              = 0x8D8F
	R8_SNORM           = 0x8F94
	RG8_SNORM          = 0x8F95
	RGB8_SNORM         = 0x8F96
	RGBA8_SNORM        = 0x8F97
	R16_SNORM          = 0x8F98
	RG16_SNORM         = 0x8F99
	RGB16_SNORM        = 0x8F9A
	RGBA16_SNORM       = 0x8F9B
	RGB10_A2UI         = 0x906F

	// S3TC compressed formats.
	COMPRESSED_RGB_S3TC_DXT1_EXT  = 0x83F0
	COMPRESSED_RGBA_S3TC_DXT1_EXT = 0x83F1
	COMPRESSED_RGBA_S3TC_DXT3_EXT = 0x83F2
	COMPRESSED_RGBA_S3TC_DXT5_EXT = 0x83F3

	// Internal format queries.
	INTERNALFORMAT_RED_SIZE     = 0x8271
	INTERNALFORMAT_GREEN_SIZE   = 0x8272
	INTERNALFORMAT_BLUE_SIZE    = 0x8273
	INTERNALFORMAT_ALPHA_SIZE   = 0x8274
	INTERNALFORMAT_DEPTH_SIZE   = 0x8275
	INTERNALFORMAT_STENCIL_SIZE = 0x8276
	INTERNALFORMAT_SHARED_SIZE  = 0x8277

	// Framebuffers.
	COLOR                                     = 0x1800
	DEPTH                                     = 0x1801
	STENCIL                                   = 0x1802
	FRAMEBUFFER_UNDEFINED                     = 0x8219
	DEPTH_STENCIL_ATTACHMENT                  = 0x821A
	READ_FRAMEBUFFER                          = 0x8CA8
	DRAW_FRAMEBUFFER                          = 0x8CA9
	FRAMEBUFFER_COMPLETE                      = 0x8CD5
	FRAMEBUFFER_INCOMPLETE_ATTACHMENT         = 0x8CD6
	FRAMEBUFFER_INCOMPLETE_MISSING_ATTACHMENT = 0x8CD7
	FRAMEBUFFER_INCOMPLETE_DRAW_BUFFER        = 0x8CDB
	FRAMEBUFFER_INCOMPLETE_READ_BUFFER        = 0x8CDC
	FRAMEBUFFER_UNSUPPORTED                   = 0x8CDD
	MAX_COLOR_ATTACHMENTS                     = 0x8CDF
	COLOR_ATTACHMENT0                         = 0x8CE0
	DEPTH_ATTACHMENT                          = 0x8D00
	STENCIL_ATTACHMENT                        = 0x8D20
	FRAMEBUFFER                               = 0x8D40
	RENDERBUFFER                              = 0x8D41
	FRAMEBUFFER_INCOMPLETE_MULTISAMPLE        = 0x8D56
	FRAMEBUFFER_INCOMPLETE_LAYER_TARGETS      = 0x8DA8

	// Shaders and programs.
	PROGRAM_BINARY_LENGTH       = 0x8741
	NUM_PROGRAM_BINARY_FORMATS  = 0x87FE
	FRAGMENT_SHADER             = 0x8B30
	VERTEX_SHADER               = 0x8B31
	COMPILE_STATUS              = 0x8B81
	LINK_STATUS                 = 0x8B82
	VALIDATE_STATUS             = 0x8B83
	INFO_LOG_LENGTH             = 0x8B84
	GEOMETRY_SHADER             = 0x8DD9
	TESS_EVALUATION_SHADER      = 0x8E87
	TESS_CONTROL_SHADER         = 0x8E88
	COMPUTE_SHADER              = 0x91B9
	UNIFORM                     = 0x92E1
	UNIFORM_BLOCK               = 0x92E2
	PROGRAM_INPUT               = 0x92E3
	PROGRAM_OUTPUT              = 0x92E4
	ACTIVE_RESOURCES            = 0x92F5
	NAME_LENGTH                 = 0x92F9
	LOCATION                    = 0x930E
	SHADER_BINARY_FORMAT_SPIR_V = 0x9551
	INVALID_INDEX               = 0xFFFFFFFF

	// Sync objects.
	SYNC_FLUSH_COMMANDS_BIT    = 0x00000001
	SYNC_STATUS                = 0x9114
	SYNC_GPU_COMMANDS_COMPLETE = 0x9117
	UNSIGNALED                 = 0x9118
	SIGNALED                   = 0x9119
	ALREADY_SIGNALED           = 0x911A
	TIMEOUT_EXPIRED            = 0x911B
	CONDITION_SATISFIED        = 0x911C
	WAIT_FAILED                = 0x911D

	// Object label identifiers.
	TEXTURE      = 0x1702
	VERTEX_ARRAY = 0x8074
	BUFFER       = 0x82E0
	SHADER       = 0x82E1
	PROGRAM      = 0x82E2

	// Debug output.
	DEBUG_OUTPUT_SYNCHRONOUS       = 0x8242
	DEBUG_SOURCE_API               = 0x8246
	DEBUG_SOURCE_WINDOW_SYSTEM     = 0x8247
	DEBUG_SOURCE_SHADER_COMPILER   = 0x8248
	DEBUG_SOURCE_THIRD_PARTY       = 0x8249
	DEBUG_SOURCE_APPLICATION       = 0x824A
	DEBUG_SOURCE_OTHER             = 0x824B
	DEBUG_TYPE_ERROR               = 0x824C
	DEBUG_TYPE_DEPRECATED_BEHAVIOR = 0x824D
	DEBUG_TYPE_UNDEFINED_BEHAVIOR  = 0x824E
	DEBUG_TYPE_PORTABILITY         = 0x824F
	DEBUG_TYPE_PERFORMANCE         = 0x8250
	DEBUG_TYPE_OTHER               = 0x8251
	DEBUG_TYPE_MARKER              = 0x8268
	DEBUG_TYPE_PUSH_GROUP          = 0x8269
	DEBUG_TYPE_POP_GROUP           = 0x826A
	DEBUG_SEVERITY_NOTIFICATION    = 0x826B
	DEBUG_SEVERITY_HIGH            = 0x9146
	DEBUG_SEVERITY_MEDIUM          = 0x9147
	DEBUG_SEVERITY_LOW             = 0x9148
	DEBUG_OUTPUT                   = 0x92E0

	// Capabilities.
	LINE_SMOOTH                   = 0x0B20
	POLYGON_SMOOTH                = 0x0B41
	CULL_FACE                     = 0x0B44
	DEPTH_TEST                    = 0x0B71
	STENCIL_TEST                  = 0x0B90
	DITHER                        = 0x0BD0
	BLEND                         = 0x0BE2
	COLOR_LOGIC_OP                = 0x0BF2
	SCISSOR_TEST                  = 0x0C11
	POLYGON_OFFSET_POINT          = 0x2A01
	POLYGON_OFFSET_LINE           = 0x2A02
	CLIP_DISTANCE0                = 0x3000
	POLYGON_OFFSET_FILL           = 0x8037
	MULTISAMPLE                   = 0x809D
	SAMPLE_ALPHA_TO_COVERAGE      = 0x809E
	SAMPLE_ALPHA_TO_ONE           = 0x809F
	SAMPLE_COVERAGE               = 0x80A0
	PROGRAM_POINT_SIZE            = 0x8642
	DEPTH_CLAMP                   = 0x864F
	TEXTURE_CUBE_MAP_SEAMLESS     = 0x884F
	SAMPLE_SHADING                = 0x8C36
	RASTERIZER_DISCARD            = 0x8C89
	PRIMITIVE_RESTART_FIXED_INDEX = 0x8D69
	FRAMEBUFFER_SRGB              = 0x8DB9
	SAMPLE_MASK                   = 0x8E51
	PRIMITIVE_RESTART             = 0x8F9D

	// Blending.
	ZERO                     = 0
	ONE                      = 1
	SRC_COLOR                = 0x0300
	ONE_MINUS_SRC_COLOR      = 0x0301
	SRC_ALPHA                = 0x0302
	ONE_MINUS_SRC_ALPHA      = 0x0303
	DST_ALPHA                = 0x0304
	ONE_MINUS_DST_ALPHA      = 0x0305
	DST_COLOR                = 0x0306
	ONE_MINUS_DST_COLOR      = 0x0307
	SRC_ALPHA_SATURATE       = 0x0308
	CONSTANT_COLOR           = 0x8001
	ONE_MINUS_CONSTANT_COLOR = 0x8002
	CONSTANT_ALPHA           = 0x8003
	ONE_MINUS_CONSTANT_ALPHA = 0x8004
	FUNC_ADD                 = 0x8006
	MIN                      = 0x8007
	MAX                      = 0x8008
	FUNC_SUBTRACT            = 0x800A
	FUNC_REVERSE_SUBTRACT    = 0x800B

	// Primitive modes.
	POINTS                   = 0x0000
	LINES                    = 0x0001
	LINE_LOOP                = 0x0002
	LINE_STRIP               = 0x0003
	TRIANGLES                = 0x0004
	TRIANGLE_STRIP           = 0x0005
	TRIANGLE_FAN             = 0x0006
	LINES_ADJACENCY          = 0x000A
	LINE_STRIP_ADJACENCY     = 0x000B
	TRIANGLES_ADJACENCY      = 0x000C
	TRIANGLE_STRIP_ADJACENCY = 0x000D
	PATCHES                  = 0x000E

	// Clear mask.
	DEPTH_BUFFER_BIT   = 0x00000100
	STENCIL_BUFFER_BIT = 0x00000400
	COLOR_BUFFER_BIT   = 0x00004000

	// Memory barriers.
	VERTEX_ATTRIB_ARRAY_BARRIER_BIT  = 0x00000001
	ELEMENT_ARRAY_BARRIER_BIT        = 0x00000002
	UNIFORM_BARRIER_BIT              = 0x00000004
	TEXTURE_FETCH_BARRIER_BIT        = 0x00000008
	SHADER_IMAGE_ACCESS_BARRIER_BIT  = 0x00000020
	COMMAND_BARRIER_BIT              = 0x00000040
	PIXEL_BUFFER_BARRIER_BIT         = 0x00000080
	TEXTURE_UPDATE_BARRIER_BIT       = 0x00000100
	BUFFER_UPDATE_BARRIER_BIT        = 0x00000200
	FRAMEBUFFER_BARRIER_BIT          = 0x00000400
	TRANSFORM_FEEDBACK_BARRIER_BIT   = 0x00000800
	ATOMIC_COUNTER_BARRIER_BIT       = 0x00001000
	SHADER_STORAGE_BARRIER_BIT       = 0x00002000
	CLIENT_MAPPED_BUFFER_BARRIER_BIT = 0x00004000
	QUERY_BUFFER_BARRIER_BIT         = 0x00008000
	ALL_BARRIER_BITS                 = 0xFFFFFFFF

	// Rasterization.
	FRONT          = 0x0404
	BACK           = 0x0405
	FRONT_AND_BACK = 0x0408
	CW             = 0x0900
	CCW            = 0x0901
	POINT          = 0x1B00
	LINE           = 0x1B01
	FILL           = 0x1B02

	// Pixel store.
	UNPACK_ALIGNMENT = 0x0CF5
	PACK_ALIGNMENT   = 0x0D05
)
