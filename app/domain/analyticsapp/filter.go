package analyticsapp

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/jcpaschoal/admindashboard/business/domain/analyticsbus"
)

var errDaysRange = fmt.Errorf("days must be between 1 and %d", analyticsbus.MaxDays)

// parseDays lê a janela em dias; ausente usa o padrão.
func parseDays(r *http.Request) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get("days"))
	if raw == "" {
		return analyticsbus.DefaultDays, nil
	}

	days, err := strconv.Atoi(raw)
	if err != nil || days < 1 || days > analyticsbus.MaxDays {
		return 0, errDaysRange
	}

	return days, nil
}
