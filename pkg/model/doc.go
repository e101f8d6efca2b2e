// Package model describes the objects manipulated by sahl.
//
// The object model is composed of:
//
//	Datasets:
//	  A dataset is identified by an owner (the account it is published under) and a slug
//	  (a URL-safe short name). Its identifier is "owner/slug".
//
//	Staged directories:
//	  A staged directory is an upload-ready copy of a source tree, augmented with a README.md
//	  and a dataset-metadata.json descriptor.
//
//	Publish requests:
//	  A request to publish a staged directory, either as a new dataset or as a new version
//	  of an existing one.
package model
