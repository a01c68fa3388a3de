package amqp

// Frame types.
const (
	FrameMethod    = 1
	FrameHeader    = 2
	FrameBody      = 3
	FrameHeartbeat = 8
)

// FrameEnd terminates every frame except the protocol header.
const FrameEnd = 0xce

// frameHeaderSize is the type, channel and size prefix of a frame.
const frameHeaderSize = 7

// Protocol version spoken by this package.
const (
	VersionMajor    = 0
	VersionMinor    = 9
	VersionRevision = 1
)

// Class identifiers.
const (
	ClassConnection = 10
	ClassChannel    = 20
	ClassExchange   = 40
	ClassQueue      = 50
	ClassBasic      = 60
	ClassConfirm    = 85
	ClassTx         = 90
)

// ReplySuccess is the reply code of a normal close.
const ReplySuccess = 200

// Defaults used by the catalogue constructors.
const (
	DefaultLocale      = "en_US"
	DefaultMechanism   = "PLAIN"
	DefaultVirtualHost = "/"
	DefaultExchange    = "direct"
)
