// Package printing renders invoice sheets and barcode labels to PDF.
//
// Two sheet engines exist. FPDFRenderer draws the page directly with gofpdf
// and needs nothing at runtime. ChromedpRenderer fills an HTML template and
// prints it through a headless Chrome, local or remote. Labels are always
// drawn with gofpdf.
package printing
