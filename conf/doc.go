// Package conf holds a configuration tree merged with environment overrides
// and answers dotted-path queries against it.
//
// A Conf is built once from a base tree and an optional overlay spec:
//
//	c, err := conf.New(conf.Options{
//		Config: map[string]any{
//			"server": map[string]any{"port": 8080, "base_path": "/api"},
//			"nums":   []any{1, 2, 3},
//		},
//		MergeEnv: &models.OverlaySpec{Prefix: "APP", Separator: "__"},
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	port, _ := c.Get("server.port") // APP__SERVER__PORT wins when set
//	first, _ := c.Get("nums.0")     // APP__NUMS__0 wins when set
//
// Construction copies the base tree, so the caller's data is never modified.
// After construction a Conf is read-only and safe for concurrent use; every
// mapping or sequence it returns is an independent copy.
package conf
