package seeders

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

var brandNames = []string{
	"Siemens", "ABB", "Schneider Electric", "Mitsubishi Electric", "Carrier",
}

func seedBrands(ctx context.Context, db *pgxpool.Pool) error {
	for _, name := range brandNames {
		_, err := db.Exec(ctx,
			`INSERT INTO brands (name) VALUES ($1) ON CONFLICT (name) DO NOTHING;`, name)
		if err != nil {
			return err
		}
	}
	return nil
}

var locationTypes = []struct {
	name         string
	nameTemplate string
	codeTemplate string
}{
	{"Campus", "Campus {name}", "SEDE"},
	{"Building", "Building {n}", "E{n}"},
	{"Floor", "Floor {n}", "P{n}"},
	{"Room", "Room {n}", "S{n}"},
}

func seedLocationTypes(ctx context.Context, db *pgxpool.Pool) error {
	for _, lt := range locationTypes {
		_, err := db.Exec(ctx, `
			INSERT INTO technical_location_types (name, name_template, code_template)
			VALUES ($1, $2, $3)
			ON CONFLICT (name) DO NOTHING;`,
			lt.name, lt.nameTemplate, lt.codeTemplate)
		if err != nil {
			return err
		}
	}
	return nil
}

// seedLocationTree inserts the campus root and a first building with one
// floor. Children carry codes derived from the parent code plus a suffix.
func seedLocationTree(ctx context.Context, db *pgxpool.Pool) error {
	locations := []struct {
		code     string
		name     string
		typeName string
		parent   interface{}
	}{
		{"SEDE", "Main Campus", "Campus", nil},
		{"SEDE-E1", "Building 1", "Building", "SEDE"},
		{"SEDE-E1-P1", "Floor 1", "Floor", "SEDE-E1"},
	}
	for _, loc := range locations {
		_, err := db.Exec(ctx, `
			INSERT INTO technical_locations (technical_code, name, type_id, parent_technical_code)
			SELECT $1, $2, id, $4 FROM technical_location_types WHERE name = $3
			ON CONFLICT (technical_code) DO NOTHING;`,
			loc.code, loc.name, loc.typeName, loc.parent)
		if err != nil {
			return err
		}
	}
	return nil
}

func seedAdminUser(ctx context.Context, db *pgxpool.Pool) error {
	_, err := db.Exec(ctx, `
		INSERT INTO users (uuid, name, email, role)
		VALUES ($1, 'Administrator', 'admin@gema.local', 'admin')
		ON CONFLICT (email) DO NOTHING;`,
		uuid.NewString())
	return err
}
