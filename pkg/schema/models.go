// Package schema provides destination tables for generated artifacts.
// Models carry GORM tags for PostgreSQL AutoMigrate and db/ddl tags for
// SQLite DDL generation.
package schema

import (
	"database/sql"
)

// DDLGenerator defines how Go models generate SQLite DDL.
type DDLGenerator interface {
	// TableDDL returns the CREATE TABLE statement for this model.
	TableDDL() string

	// IndexDDL returns CREATE INDEX statements for this model.
	IndexDDL() []string

	// TableName returns the table name for this model.
	TableName() string
}

// Taxon is a row of the taxa table. Taxa of every rank share the table,
// columns below the rank of a taxon are NULL.
type Taxon struct {
	ID int64 `gorm:"primaryKey" db:"id" ddl:"INTEGER PRIMARY KEY AUTOINCREMENT"`

	// Rank is one of order, family, subfamily, genus, species.
	Rank string `gorm:"column:rank;type:varchar(20);not null;index" db:"rank" ddl:"TEXT NOT NULL"`

	Kingdom        string         `gorm:"column:kingdom;type:varchar(100);not null" db:"kingdom" ddl:"TEXT NOT NULL"`
	Phylum         sql.NullString `gorm:"column:phylum;type:varchar(100)" db:"phylum" ddl:"TEXT"`
	Class          sql.NullString `gorm:"column:class;type:varchar(100)" db:"class" ddl:"TEXT"`
	Order          sql.NullString `gorm:"column:order;type:varchar(100)" db:"order" ddl:"TEXT"`
	Family         sql.NullString `gorm:"column:family;type:varchar(100)" db:"family" ddl:"TEXT"`
	Subfamily      sql.NullString `gorm:"column:subfamily;type:varchar(100)" db:"subfamily" ddl:"TEXT"`
	Genus          sql.NullString `gorm:"column:genus;type:varchar(100);index:idx_taxa_genus_epithet" db:"genus" ddl:"TEXT"`
	SpeciesEpithet sql.NullString `gorm:"column:species_epithet;type:varchar(100);index:idx_taxa_genus_epithet" db:"species_epithet" ddl:"TEXT"`
	CommonName     sql.NullString `gorm:"column:common_name;type:varchar(255)" db:"common_name" ddl:"TEXT"`
}

// TableName returns the table name for GORM.
func (Taxon) TableName() string {
	return "taxa"
}

// Sighting is a row of the sightings table. The classification of the
// observed species is copied into the row, TaxonID refers to taxa.id.
type Sighting struct {
	ID     int64         `gorm:"primaryKey" db:"id" ddl:"INTEGER PRIMARY KEY AUTOINCREMENT"`
	TripID sql.NullInt64 `gorm:"column:trip_id;index" db:"trip_id" ddl:"INTEGER"`

	// TaxonID is NULL when the species is not in taxa.
	TaxonID sql.NullInt64 `gorm:"column:taxon_id;index" db:"taxon_id" ddl:"INTEGER REFERENCES taxa(id)"`

	Kingdom        string         `gorm:"column:kingdom;type:varchar(100);not null" db:"kingdom" ddl:"TEXT NOT NULL"`
	Phylum         sql.NullString `gorm:"column:phylum;type:varchar(100)" db:"phylum" ddl:"TEXT"`
	Class          sql.NullString `gorm:"column:class;type:varchar(100)" db:"class" ddl:"TEXT"`
	Order          sql.NullString `gorm:"column:order;type:varchar(100)" db:"order" ddl:"TEXT"`
	Family         sql.NullString `gorm:"column:family;type:varchar(100)" db:"family" ddl:"TEXT"`
	Subfamily      sql.NullString `gorm:"column:subfamily;type:varchar(100)" db:"subfamily" ddl:"TEXT"`
	Genus          sql.NullString `gorm:"column:genus;type:varchar(100)" db:"genus" ddl:"TEXT"`
	SpeciesEpithet sql.NullString `gorm:"column:species_epithet;type:varchar(100)" db:"species_epithet" ddl:"TEXT"`
	CommonName     sql.NullString `gorm:"column:common_name;type:varchar(255)" db:"common_name" ddl:"TEXT"`

	Notes     sql.NullString `gorm:"column:notes;type:text" db:"notes" ddl:"TEXT"`
	MediaPath sql.NullString `gorm:"column:media_path;type:text" db:"media_path" ddl:"TEXT"`
	Date      sql.NullString `gorm:"column:date;type:varchar(10)" db:"date" ddl:"TEXT"`
	Location  sql.NullString `gorm:"column:location;type:varchar(255)" db:"location" ddl:"TEXT"`
}

// TableName returns the table name for GORM.
func (Sighting) TableName() string {
	return "sightings"
}
