// Package config provides configuration parsing for Puerro projects.
//
// The configuration is stored in puerro.json at the project root.
// Environment variables override file values.
//
// # Configuration File Structure
//
//	{
//	  "name": "my-app",
//	  "dev": {
//	    "port": 3000,
//	    "host": "localhost",
//	    "pretty": true
//	  },
//	  "metrics": {
//	    "enabled": true,
//	    "namespace": "puerro"
//	  },
//	  "export": {
//	    "output": "dist",
//	    "bucket": "",
//	    "region": "us-east-1"
//	  }
//	}
//
// # Environment Overrides
//
//	PUERRO_PORT, PUERRO_HOST, PUERRO_METRICS_NAMESPACE
package config
