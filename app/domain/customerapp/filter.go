package customerapp

import (
	"net/http"
	"strings"

	"github.com/jcpaschoal/admindashboard/business/domain/customerbus"
)

// parseFilter extrai o termo de busca da query string. Busca vazia não filtra.
func parseFilter(r *http.Request) customerbus.QueryFilter {
	var filter customerbus.QueryFilter

	if search := strings.TrimSpace(r.URL.Query().Get("search")); search != "" {
		filter.Search = &search
	}

	return filter
}
