package database

// columnNames derives the id and name columns of a table from its plural
// name by dropping exactly one trailing character: "meals" has meal_id and
// meal_name. It is the only place the convention lives.
func columnNames(table string) (id, name string) {
	if table == "" {
		return "", ""
	}
	stem := table[:len(table)-1]
	return stem + "_id", stem + "_name"
}
