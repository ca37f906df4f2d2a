package aesgo

import "github.com/kaisiemek/aesgo/src/consts"

// ModeKind selects the mode-of-operation engine a Config drives.
type ModeKind int

const (
	ECB ModeKind = iota
	CBC
	OFB
	CFB
	CTR
)

func (k ModeKind) String() string {
	switch k {
	case ECB:
		return "ECB"
	case CBC:
		return "CBC"
	case OFB:
		return "OFB"
	case CFB:
		return "CFB"
	case CTR:
		return "CTR"
	default:
		return "unknown"
	}
}

// CFBSegment picks the CFB feedback segment size.
type CFBSegment int

const (
	CFB128 CFBSegment = iota
	CFB8
)

// Mode describes which engine to run and the IV/segment parameters it
// needs. IV is unused for ECB and Segment is only meaningful when
// Kind == CFB.
type Mode struct {
	Kind    ModeKind
	IV      [consts.IV_SIZE]byte
	Segment CFBSegment
}

func NewECBMode() Mode { return Mode{Kind: ECB} }

func NewCBCMode(iv [consts.IV_SIZE]byte) Mode {
	return Mode{Kind: CBC, IV: iv}
}

func NewOFBMode(iv [consts.IV_SIZE]byte) Mode {
	return Mode{Kind: OFB, IV: iv}
}

func NewCFBMode(iv [consts.IV_SIZE]byte, segment CFBSegment) Mode {
	return Mode{Kind: CFB, IV: iv, Segment: segment}
}

func NewCTRMode(iv [consts.IV_SIZE]byte) Mode {
	return Mode{Kind: CTR, IV: iv}
}

// Config bundles a Key with a Mode and the pair of precomputed Operation
// schedules, so streaming engines never reconstruct a schedule per block.
// Config is read-only after NewConfig and may be shared across concurrent
// Encrypt/Decrypt calls on disjoint streams.
type Config struct {
	Key         *Key
	Mode        Mode
	EncSchedule []Operation
	DecSchedule []Operation
	Logger      Logger
}

// NewConfig precomputes the encryption/decryption schedules for key once
// and pairs them with mode.
func NewConfig(key *Key, mode Mode) *Config {
	return &Config{
		Key:         key,
		Mode:        mode,
		EncSchedule: BuildEncryptSchedule(key.Rounds()),
		DecSchedule: BuildDecryptSchedule(key.Rounds()),
	}
}

// WithLogger attaches a diagnostic Logger to the Config and returns it,
// for chaining after NewConfig.
func (c *Config) WithLogger(l Logger) *Config {
	c.Logger = l
	return c
}
