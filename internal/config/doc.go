// Package config provides configuration parsing for htmlgen projects.
//
// The configuration is stored in htmlgen.json at the project root.
// This package handles loading, saving, and validating configuration.
//
// # Configuration File Structure
//
//	{
//	  "source": "docs",
//	  "doctype": "html5",
//	  "server": {
//	    "host": "localhost",
//	    "port": 4000,
//	    "watch": true,
//	    "liveReload": true,
//	    "debounce": "200ms"
//	  },
//	  "output": {
//	    "dir": "dist"
//	  },
//	  "publish": {
//	    "bucket": "my-site",
//	    "prefix": "docs",
//	    "region": "us-east-1"
//	  },
//	  "metrics": {
//	    "enabled": true,
//	    "namespace": "htmlgen"
//	  }
//	}
//
// # Usage
//
//	cfg, err := config.Load(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println("Serving on", cfg.ServerAddress())
package config
