// Package rctl maps routes onto controller actions.
//
// A route arrives as its metadata, the list of its path segments and any
// extra values the router captured. The controller looks for the longest
// prefix of the segments whose camel-cased join, plus the configured suffix,
// names a registered action:
//
//	segments [bundle edit nuff], extra ["10"], suffix "Action"
//	tries    bundleEditNuffAction, bundleEditAction, bundleAction
//
// Segments past the matched prefix become the first arguments, followed by
// the extra values, numeric strings coerced to numbers. When nothing
// matches, the default action ("index" plus suffix) receives every segment.
//
// An action returns nil or a View. The controller keeps the view until the
// next dispatch or Remove, releasing it first in both cases.
//
// Controllers are not safe for concurrent use; see package muxbind for
// serving them over HTTP.
package rctl
