// Package loader reads rule descriptors and state snapshots from YAML or
// JSON documents.
//
// A descriptor document lists rules under a top level "rules" key:
//
//	rules:
//	  - name: email
//	    type: required
//	    stateMap: email
//	  - name: password
//	    type: minLength
//	    stateMap: credentials.password
//	    compareWith: 8
//	    message: "{key} needs {compare} characters"
//
// The optional message is a template, see message.Template. Custom predicates
// cannot be expressed in a document, so every entry needs a stateMap.
// Unknown keys are rejected.
package loader
