package util

type causer interface {
	Cause() error
}

type ignorable interface {
	Ignorable() bool
}

type exitStatuser interface {
	ExitStatus() int
}

// IsIgnorableError reports whether err (or any error in its cause
// chain) is marked as safe to ignore, such as a user-requested quit.
func IsIgnorableError(err error) bool {
	for e := err; e != nil; {
		switch v := e.(type) {
		case ignorable:
			return v.Ignorable()
		case causer:
			e = v.Cause()
		default:
			return false
		}
	}
	return false
}

// GetExitStatus digs through the cause chain of err for an explicit
// exit status. The boolean is false when none was found, in which case
// the status defaults to 1.
func GetExitStatus(err error) (int, bool) {
	for e := err; e != nil; {
		if ese, ok := e.(exitStatuser); ok {
			return ese.ExitStatus(), true
		}
		if cerr, ok := e.(causer); ok {
			e = cerr.Cause()
			continue
		}
		break
	}
	return 1, false
}
