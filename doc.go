// Command graphql-browser navigates the object graph of a GraphQL API.
//
// About GraphQL
//
// GraphQL is a query language for APIs and a runtime for fulfilling those queries with your existing data.
// A server describes its schema through introspection, which is all this tool needs to know about it.
//
// Source: https://graphql.org
//
// About this tool
//
// Every location of the graph is a path of field selections starting at the query root, e.g.
//
//	library/books[0]/author
//	node({"id":"Qm9vazox"})/library
//
// A location is fetched with exactly one query. The query selects the fields configured in the view of the
// object type found at the end of the path, or every directly fetchable field when no view is configured.
// Fields needing arguments or a selection set are not fetched but rendered as links to their own location.
//
// The tool can be used from the command line (query, browse, validate) or as a JSON API (serve) behind a UI.
package main
