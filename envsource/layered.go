package envsource

type layered []Environment

// Layered returns an [Environment] that consults envs in order and returns
// the first hit. Nil entries are skipped.
//
// Process environment in front of a .env file:
//
//	env := envsource.Layered(envsource.OS(), dotenv)
func Layered(envs ...Environment) Environment {
	out := make(layered, 0, len(envs))
	for _, env := range envs {
		if env != nil {
			out = append(out, env)
		}
	}
	return out
}

func (l layered) Lookup(name string) (string, bool) {
	for _, env := range l {
		if v, ok := env.Lookup(name); ok {
			return v, true
		}
	}
	return "", false
}
