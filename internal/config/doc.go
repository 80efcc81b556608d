// Package config loads YAML profiles: named codec settings plus the generator jobs
// run by csv-mapper-generator.
//
// A profile looks like:
//
//	version: "1"
//	codec:
//	  mode: header
//	  headers: from_file
//	  delimiter: ";"
//	  decimal_separator: ","
//	  filter:
//	    mode: ignore
//	    scope: name
//	    values: [CreatedDate]
//	generate:
//	  - package: ./examples/orders
//	    types: [BuyOrder, Shipment]
package config
