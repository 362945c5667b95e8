package envsource

import "os"

type osEnvironment struct{}

// OS returns an [Environment] backed by the process environment.
func OS() Environment {
	return osEnvironment{}
}

func (osEnvironment) Lookup(name string) (string, bool) {
	return os.LookupEnv(name)
}
