// Package envsource provides the read-only environment views consulted by an
// overlay pass.
//
// An [Environment] answers a single question: is a variable with this exact
// name set, and to what. The overlay never enumerates or writes the
// environment. Available views:
//   - [OS] reads the process environment;
//   - [Map] is a literal name/value snapshot, handy in tests;
//   - [FromDotEnv] reads one or more .env files (github.com/joho/godotenv);
//   - [Layered] stacks views, the first one holding a name wins.
package envsource
