package store

import (
	sq "github.com/Masterminds/squirrel"
	"github.com/krazykeith/apistarter/models"
)

// psql is the statement builder configured for PostgreSQL-style $N
// placeholders. All person queries are built through it.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// personColumns is the canonical column order used by every person query and
// by every row scan in this package.
var personColumns = []string{
	"person_id",
	"first_name",
	"last_name",
	"email",
	"phone",
	"created_at",
	"updated_at",
}

const personReturning = "RETURNING person_id, first_name, last_name, email, phone, created_at, updated_at"

// buildSearchPersonsQuery builds the search SELECT. An empty query returns
// the unfiltered set; otherwise the pattern is matched case-insensitively
// against first name, last name, and e-mail.
func buildSearchPersonsQuery(query string) (string, []any, error) {
	builder := psql.
		Select(personColumns...).
		From(models.Person{}.TableName()).
		OrderBy("person_id")

	if query != "" {
		pattern := "%" + query + "%"
		builder = builder.Where(sq.Or{
			sq.ILike{"first_name": pattern},
			sq.ILike{"last_name": pattern},
			sq.ILike{"email": pattern},
		})
	}

	return builder.ToSql()
}

// buildGetPersonQuery builds the single-row lookup by identifier.
func buildGetPersonQuery(id int64) (string, []any, error) {
	return psql.
		Select(personColumns...).
		From(models.Person{}.TableName()).
		Where(sq.Eq{"person_id": id}).
		ToSql()
}

// buildInsertPersonQuery builds the INSERT for a not-yet-persisted person.
// The database assigns person_id, created_at, and updated_at; all columns
// are returned so the caller receives the canonical stored representation.
func buildInsertPersonQuery(person models.Person) (string, []any, error) {
	return psql.
		Insert(models.Person{}.TableName()).
		Columns("first_name", "last_name", "email", "phone").
		Values(person.FirstName, person.LastName, person.Email, person.Phone).
		Suffix(personReturning).
		ToSql()
}

// buildUpdatePersonQuery builds the full-row UPDATE for an existing person.
// updated_at is refreshed server-side.
func buildUpdatePersonQuery(person models.Person) (string, []any, error) {
	return psql.
		Update(models.Person{}.TableName()).
		Set("first_name", person.FirstName).
		Set("last_name", person.LastName).
		Set("email", person.Email).
		Set("phone", person.Phone).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"person_id": person.PersonID}).
		Suffix(personReturning).
		ToSql()
}
