// Package models contains GORM-specific persistence models that map to database tables.
// These models are separate from domain entities to keep the domain layer free
// from ORM concerns.
//
// Key principles:
// 1. Domain entities carry no GORM tags or infrastructure concerns
// 2. Persistence models hold all GORM annotations and table mappings
// 3. Mappers convert between domain entities and persistence models
// 4. Repositories operate on persistence models only
//
// Structure:
// - base.go: shared persistence fields (BaseModel, AggregateModel)
// - partner.go: customers and their address/contact child tables
// - catalog.go: products
// - inventory.go: stock records
// - trade.go: sales and their line item child table
package models
