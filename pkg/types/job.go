// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds the shared data model for docx2md: conversion jobs,
// their results, and configuration.
package types

// ConversionJob describes one DOCX-to-Markdown conversion. Immutable once
// constructed.
type ConversionJob struct {
	// Input is the path to the DOCX file.
	Input string `json:"input" yaml:"input"`

	// Output is the path for the Markdown result. Empty means derive it
	// from Input by replacing the extension with .md.
	Output string `json:"output,omitempty" yaml:"output,omitempty"`

	// ExtraArgs are appended verbatim to the pandoc command line.
	ExtraArgs []string `json:"extra_args,omitempty" yaml:"extra_args,omitempty"`
}

// ConversionResult is the outcome of a single conversion attempt. Never
// mutated after creation.
type ConversionResult struct {
	// Input is the path of the DOCX file the result refers to.
	Input string `json:"input" yaml:"input"`

	// Ok reports whether pandoc exited successfully.
	Ok bool `json:"ok" yaml:"ok"`

	// Detail carries the captured error text when Ok is false.
	Detail string `json:"detail,omitempty" yaml:"detail,omitempty"`
}
