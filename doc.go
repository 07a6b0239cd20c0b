// Package odatatools provides tools for validating OData request URIs.
//
// odatatools decides whether a parsed OData resource path, together with the
// system query options attached to it, is legal per the OData URL conventions.
// It does not parse raw URIs and it does not execute requests: the input is an
// already-structured request shape, the output is a decision.
//
// # Overview
//
// The library consists of three primary packages:
//
//   - uri: the request shape consumed from an OData URI parser — root request
//     kind, typed path segments, and system query options
//   - edm: the read-only schema lookup the classifier consults — operation
//     return types, collection and media-stream facets, key property types
//   - urivalidator: the resource-kind classifier, the query-option
//     applicability matrix, and the validation entry points
//
// Structured error types live in the odataerrors package.
//
// # Quick Start
//
// Validate a request shape against a metadata model:
//
//	import (
//		"github.com/erraggy/odatatools/edm"
//		"github.com/erraggy/odatatools/uri"
//		"github.com/erraggy/odatatools/urivalidator"
//	)
//
//	model, err := edm.LoadModelFile("metadata.yaml")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	req := uri.Request{
//		Kind: uri.RootKindResource,
//		Path: []uri.Segment{
//			{Kind: uri.SegmentEntitySet, Name: "Products", Collection: true},
//		},
//		Options: []uri.QueryOption{
//			{Kind: uri.OptionFilter, Value: "Price gt 10"},
//		},
//	}
//
//	result, err := urivalidator.ValidateWithOptions(
//		urivalidator.WithRequest(req),
//		urivalidator.WithSchema(model),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	if !result.Valid {
//		for _, e := range result.Errors {
//			fmt.Println(e.String())
//		}
//	}
//
// Classify a resource path without checking options:
//
//	kind, err := urivalidator.Classify(req, model)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(kind) // "entitySet"
//
// # Command-Line Interface
//
// In addition to the library packages, odatatools provides a command-line
// interface:
//
//	# Validate a request description against a metadata model
//	odatatools validate --metadata metadata.yaml request.yaml
//
//	# Classify the resource kind of a request
//	odatatools classify --metadata metadata.yaml request.yaml
//
//	# Run the MCP server over stdio
//	odatatools mcp
//
// Install the CLI:
//
//	go install github.com/erraggy/odatatools/cmd/odatatools@latest
//
// # Concurrency
//
// Classification and validation are pure functions of their inputs. A Model is
// immutable once built, so any number of validations may run concurrently over
// the same model without synchronization.
//
// # Additional Resources
//
//   - OData Version 4.0 URL Conventions:
//     http://docs.oasis-open.org/odata/odata/v4.0/odata-v4.0-part2-url-conventions.html
//   - OData Version 4.0 Protocol:
//     http://docs.oasis-open.org/odata/odata/v4.0/odata-v4.0-part1-protocol.html
package odatatools
