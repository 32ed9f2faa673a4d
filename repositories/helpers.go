package repositories

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/Dosada05/scouting-system/models"
)

func checkAffectedRows(result sql.Result, notFoundError error) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check affected rows: %w", err)
	}
	if rowsAffected == 0 {
		return notFoundError
	}
	return nil
}

// updateBuilder accumulates SET clauses for partial updates, so a PATCH
// only touches the columns the payload actually carried.
type updateBuilder struct {
	sets []string
	args []interface{}
}

func (b *updateBuilder) set(column string, value interface{}) {
	b.args = append(b.args, value)
	b.sets = append(b.sets, fmt.Sprintf("%s = $%d", column, len(b.args)))
}

func (b *updateBuilder) empty() bool {
	return len(b.sets) == 0
}

// build renders "UPDATE <table> SET ... WHERE id = $n RETURNING <returning>".
func (b *updateBuilder) build(table, returning string, id int) (string, []interface{}) {
	args := append(b.args, id)
	query := fmt.Sprintf(
		"UPDATE %s SET %s WHERE id = $%d RETURNING %s",
		table, strings.Join(b.sets, ", "), len(args), returning,
	)
	return query, args
}

// setOptional binds a patch field: unset fields are skipped entirely,
// explicit nulls are bound as SQL NULL.
func setOptional[T any](b *updateBuilder, column string, o models.Optional[T]) {
	if !o.Set {
		return
	}
	if o.Value == nil {
		b.set(column, nil)
		return
	}
	b.set(column, *o.Value)
}
