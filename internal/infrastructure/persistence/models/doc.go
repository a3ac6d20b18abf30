// Package models contains GORM persistence models for the invoicing tables.
// Domain aggregates stay free of ORM tags; each model converts to and from
// its aggregate with ToDomain and FromDomain.
//
// Tables:
//   - customers plus the three type-index tables (production_customers,
//     in_store_customers, wedding_invitation_makers)
//   - products
//   - invoices and invoice_items
package models
