package usp

import "github.com/sirupsen/logrus"

// Log is the logger used for the engine's optional debug-level tracing. It
// is silent by default (logrus' default level is Info, and nothing here
// logs above Debug), matching spec.md's requirement that solvers not log at
// INFO level during steady operation. Callers that want the
// contradiction/identity/solution markers should set
// Log.SetLevel(logrus.DebugLevel).
var Log = logrus.StandardLogger()

func traceContradiction(where string) {
	if Log.IsLevelEnabled(logrus.DebugLevel) {
		Log.WithField("where", where).Debug("contradiction found")
	}
}

func traceIdentity(where string) {
	if Log.IsLevelEnabled(logrus.DebugLevel) {
		Log.WithField("where", where).Debug("identity found")
	}
}

func traceSolution(where string) {
	if Log.IsLevelEnabled(logrus.DebugLevel) {
		Log.WithField("where", where).Debug("solution found")
	}
}
