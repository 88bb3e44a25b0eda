// Package config loads page setup files and resolves them to engine
// options. Setups can be written in YAML or TOML; the two formats carry
// the same fields.
//
//	preset: a4
//	landscape: true
//	margin-preset: narrow
//	columns:
//	  count: 2
//	  gap: 0.5in
//
// resolves to a landscape A4 page with half-inch margins and two
// columns:
//
//	opts, err := config.Load("setup.yaml")
//	if err != nil {
//		log.Fatal(err)
//	}
//	engine, err := layout.NewEngine(opts)
//
// Dimensions are strings with a unit suffix ("8.5in", "2cm", "96px",
// "72pt", "720tw"); a bare number is pixels. Anything the file leaves
// out keeps the value from [layout.DefaultOptions].
package config
