package assert

import "github.com/TimothyDexter/FiveM-StanceModifier/oerror"

func IsTrue(ok bool, message string, args ...interface{}) {
	if !ok {
		panic(oerror.Newf(message, args...))
	}
}
