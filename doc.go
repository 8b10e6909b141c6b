// File: lixenwraith/dotconf/doc.go

// Package dotconf materializes YAML, JSON and TOML documents into a Namespace: a read-only
// tree of configuration values that is addressed with attribute-style paths such as
// "server.http.port".
//
// Features:
//   - Missing keys yield NotConfigured, a sentinel that absorbs further lookups
//   - Dotted keys in documents ("a.b: 1") are expanded into nested sections
//   - Several documents merge deeply, later documents taking precedence
//   - Files are discovered by logical name across template locations
//   - Builder layering of defaults, discovered files, explicit files, environment and CLI
//   - Typed getters and struct scanning through mapstructure
//
// Quick Start:
//
//	ns, err := dotconf.LoadName("myapp")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	port := ns.Path("server.port")
//	if !dotconf.IsConfigured(port) {
//	    port = 8080
//	}
//
// With the default templates LoadName("myapp") reads, lowest precedence first:
//  1. /etc/myapp.yaml
//  2. ~/.myapp.yaml
//  3. ./myapp.yaml
//
// Layering:
//
//	ns, err := dotconf.NewBuilder().
//	    WithDefaults(defaults).
//	    WithNames("myapp").
//	    WithEnvPrefix("MYAPP_").
//	    WithArgs(os.Args[1:]).
//	    WithSources(
//	        dotconf.SourceCLI,     // highest priority
//	        dotconf.SourceEnv,
//	        dotconf.SourceName,
//	        dotconf.SourceDefault,
//	    ).
//	    Build()
//
// Thread Safety:
// A Namespace is never mutated after loading, so it is safe for concurrent reads.
package dotconf
