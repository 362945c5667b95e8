package envsource

//go:generate mockgen -source=interfaces.go -destination=../internal/mock/environment_mock.go -package=mock

// Environment is a read-only lookup of environment variables by exact name.
type Environment interface {
	// Lookup returns the value of the variable called name and whether it is
	// set. A variable set to the empty string is present.
	Lookup(name string) (string, bool)
}
