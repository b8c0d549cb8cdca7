package engine

// ErrorCode is the closed set of engine failures. Errors never change
// navigation state; the dispatcher only surfaces them as notices.
type ErrorCode int

const (
	NoError ErrorCode = iota
	UnknownCommand
	NotImplemented
	DivideByZero
	InvalidRoot
	InvalidLog
	InvalidTangent
	InvalidInverseTrig
	InvalidInverseHyperbolicTrig
	UnknownConstant
	UnknownConversion
	InvalidConversion
	UnknownUnit
)

// Message returns the user-facing text for the code. command fills the
// codes that name the offending command.
func (e ErrorCode) Message(command string) string {
	switch e {
	case NoError:
		return ""
	case UnknownCommand:
		return "Unknown function: " + command
	case NotImplemented:
		return "Not implemented yet: " + command
	case DivideByZero:
		return "Divide by zero error"
	case InvalidRoot:
		return "Invalid root error"
	case InvalidLog:
		return "Invalid log error"
	case InvalidTangent:
		return "Invalid tangent error"
	case InvalidInverseTrig:
		return "Invalid inverse trigonometry error"
	case InvalidInverseHyperbolicTrig:
		return "Invalid inverse hyperbolic trigonometry error"
	case UnknownConstant:
		return "Unknown constant error"
	case UnknownConversion:
		return "Unknown conversion error"
	case InvalidConversion:
		return "Conversion error"
	case UnknownUnit:
		return "Unknown SI unit"
	default:
		return "Unknown error"
	}
}

func (e ErrorCode) String() string {
	switch e {
	case NoError:
		return "none"
	case UnknownCommand:
		return "unknown-command"
	case NotImplemented:
		return "not-implemented"
	case DivideByZero:
		return "divide-by-zero"
	case InvalidRoot:
		return "invalid-root"
	case InvalidLog:
		return "invalid-log"
	case InvalidTangent:
		return "invalid-tangent"
	case InvalidInverseTrig:
		return "invalid-inverse-trig"
	case InvalidInverseHyperbolicTrig:
		return "invalid-inverse-hyperbolic-trig"
	case UnknownConstant:
		return "unknown-constant"
	case UnknownConversion:
		return "unknown-conversion"
	case InvalidConversion:
		return "invalid-conversion"
	case UnknownUnit:
		return "unknown-unit"
	default:
		return "unknown"
	}
}
