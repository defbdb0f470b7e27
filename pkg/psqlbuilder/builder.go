package psqlbuilder

import "github.com/Masterminds/squirrel"

// builder squirrel с плейсхолдерами postgres ($1, $2, ...)
var builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Select начинает SELECT-запрос с postgres-плейсхолдерами
func Select(columns ...string) squirrel.SelectBuilder {
	return builder.Select(columns...)
}
