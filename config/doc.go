/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package config loads the YAML file that declares which address books a
// contactstore host registers and how it logs.
//
// A minimal file looks like:
//
//	logging:
//	  level: info
//	  format: console
//	addressbooks:
//	  - key: personal
//	    name: Personal
//	    backend: vcf
//	    path: ${HOME}/.contacts/personal.vcf
//	  - key: work
//	    backend: dynamodb
//	    table: ${DDB_TABLE_NAME}
//	    permissions: [read, create]
//
// ${VAR} references are expanded from the environment after an optional
// .env file has been loaded with godotenv.
package config
