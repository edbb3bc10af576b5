// Package ade is the HTTP client for the document-intelligence service:
// synchronous parse, field extraction, and classification-based splitting,
// plus asynchronous parse jobs for documents too large for the synchronous
// endpoint.
//
// [Client.Parse] returns a [github.com/docsift/docsift/model.ParseResult];
// the tables and render packages consume it. [Client.ParseAll] fans parses
// out concurrently with a bounded number in flight, and [Client.ParseAuto]
// picks between the synchronous endpoint and a parse job by file size.
package ade
