// Package example provides a small, representative schema exercising every
// paramset node kind, used by cmd/paramset's validate/print/schema
// subcommands as a concrete demo when no external schema is supplied.
package example

import "go.fenwick.dev/paramset"

// Config is the Go-side backing storage a built schema binds into. Each
// field mirrors one parameter declared by [BuildSchema].
type Config struct {
	Host     *paramset.Atom[string]
	Port     *paramset.Atom[int64]
	Nickname *paramset.Atom[string]

	Cache struct {
		Enabled *paramset.Atom[bool]
		TTL     *paramset.Atom[int64]
	}

	Tags *paramset.Sequence[*paramset.Atom[string]]

	Endpoint *paramset.Tuple
}

// BuildSchema declares the demo "server" configuration schema and returns
// both the root [paramset.Table] and the typed field handles bound into it
// once validation succeeds. [paramset.Table.PrintAllowedConfiguration]
// renders it, after a leading blank line, as:
//
//	server: {
//	   # address the service listens on
//
//	   host: <string>
//
//	   port: 8080   # default
//
//	 ( nickname: <string>
//
//	   cache: {
//
//	      enabled: true   # default
//
//	      ttl_seconds: 60   # default
//	   }
//
//	   tags: [
//	      <string>,
//	      ...
//	   ]
//
//	   endpoint: [
//	      <string>,
//	      <int64>
//	   ]
//	}
func BuildSchema() (*paramset.Table, *Config) {
	var cfg Config

	tbl := paramset.BuildTable("server", func() {
		cfg.Host = paramset.NewAtom[string]("host",
			paramset.WithAtomComment[string]("address the service listens on"))

		cfg.Port = paramset.NewAtom[int64]("port", paramset.WithDefault[int64](8080))

		cfg.Nickname = paramset.NewAtom[string]("nickname", paramset.Optional[string]())

		paramset.BuildTable("cache", func() {
			cfg.Cache.Enabled = paramset.NewAtom[bool]("enabled", paramset.WithDefault(true))
			cfg.Cache.TTL = paramset.NewAtom[int64]("ttl_seconds", paramset.WithDefault[int64](60))
		})

		cfg.Tags = paramset.BuildSeqVector("tags", func(n paramset.Name, _ int) *paramset.Atom[string] {
			return paramset.NewAtom[string](n)
		})

		cfg.Endpoint = paramset.BuildTuple("endpoint", []func(paramset.Name) paramset.Param{
			func(n paramset.Name) paramset.Param { return paramset.NewAtom[string](n) },
			func(n paramset.Name) paramset.Param { return paramset.NewAtom[int64](n) },
		})
	})

	return tbl, &cfg
}
