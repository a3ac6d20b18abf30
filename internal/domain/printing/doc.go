// Package printing holds the printable views of documents: the A5 invoice
// sheet built from a print request and the product barcode label.
package printing
