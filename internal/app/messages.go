package app

// Usage text printed for usage errors.
const usage = `usage: confctl [flags] [command]

commands:
  display            print the merged configuration as JSON (default)
  get <path>         print the value at a dotted path, exit 1 when absent
  overrides          list leaves replaced by environment variables
  serve              expose the configuration over HTTP
  version            print build information

flags:
  -c, -config        base configuration file path or URL
  -f, -format        base configuration format (json, yaml)
  -e, -env-file      .env file layered behind the process environment
  -p, -prefix        overlay variable prefix
  -s, -separator     overlay name separator (default "__")
  -no-env            disable the environment overlay
  -a, -address       HTTP listen address for serve
  -request-timeout   HTTP request timeout
  -fetch-timeout     remote configuration fetch timeout
  -log-level         log level (debug, info, warn, error)
  -settings          JSON settings file
`
