package customerdb

import (
	"bytes"
	"strings"

	"github.com/jcpaschoal/admindashboard/business/domain/customerbus"
)

// likeEscaper makes % and _ in a search term match literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func applyFilter(filter customerbus.QueryFilter, data map[string]any, buf *bytes.Buffer) {
	if filter.Search != nil {
		data["search"] = "%" + likeEscaper.Replace(*filter.Search) + "%"
		buf.WriteString(" AND (name ILIKE :search OR email ILIKE :search)")
	}
}
