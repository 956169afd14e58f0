package resolving

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/alikitto/ad-dash/internal/domain"
)

// Campos candidatos de cronograma por campo lógico, em ordem de prioridade
var (
	scheduleStartKeys = []string{"start_time", "time_start", "start", "created_time", "createdTime"}
	scheduleEndKeys   = []string{"end_time", "time_end", "end", "stop_time", "stopTime"}
)

// Data embutida no nome do conjunto, ex.: "01/06/2025", "1.6.25", "01-06-2025"
var dateInNamePattern = regexp.MustCompile(`(\d{1,2})[./-](\d{1,2})[./-](\d{2,4})`)

// Layouts aceitos para datas em formato texto, nos formatos que o Meta retorna
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05-0700",
	"2006-01-02 15:04:05",
	time.DateOnly,
}

// Valores numéricos acima deste limiar são interpretados como milissegundos
// de epoch; abaixo, como segundos (heurística de escala de epoch)
const epochMillisThreshold = 1e12

// ResolveSchedule resolve a janela de veiculação oficial de um conjunto,
// aplicando precedência estrita por fonte: um início/fim explícito no registro
// de detalhes sempre vence; na ausência, o date_range dos insights; depois os
// campos da linha de resumo; por fim, um padrão de data no nome livre.
//
// A precedência é por registro, não por campo: a presença de qualquer data
// explícita nos detalhes esgota aquele nível, mesmo que só o início exista.
// Campos não resolvíveis ficam nulos; a função nunca falha.
func ResolveSchedule(details domain.RawRecord, insights *domain.TimeInsights, row domain.RawRecord, name string) domain.ResolvedSchedule {
	if start, end := explicitWindow(details); start != nil || end != nil {
		return anchoredWindow(start, end)
	}

	if insights != nil {
		start := ParseTimestamp(insights.DateRange.Start)
		end := ParseTimestamp(insights.DateRange.End)
		if start != nil || end != nil {
			return anchoredWindow(start, end)
		}
	}

	if start, end := explicitWindow(row); start != nil || end != nil {
		return anchoredWindow(start, end)
	}

	if start := dateFromName(name); start != nil {
		return domain.ResolvedSchedule{Start: start}
	}

	return domain.ResolvedSchedule{}
}

// ParseTimestamp decodifica um valor bruto de data/hora vindo do upstream.
// Números são epoch (segundos ou milissegundos conforme a magnitude); strings
// são datas de calendário. Valores inválidos são tratados como ausentes.
func ParseTimestamp(v any) *time.Time {
	switch t := v.(type) {
	case nil:
		return nil
	case time.Time:
		if t.IsZero() {
			return nil
		}
		return &t
	case float64:
		return epochToTime(t)
	case int:
		return epochToTime(float64(t))
	case int64:
		return epochToTime(float64(t))
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return nil
		}
		return epochToTime(f)
	case string:
		return parseTimestampString(t)
	default:
		return nil
	}
}

func epochToTime(epoch float64) *time.Time {
	if epoch <= 0 {
		return nil
	}

	var ts time.Time
	if epoch >= epochMillisThreshold {
		ts = time.UnixMilli(int64(epoch)).UTC()
	} else {
		ts = time.Unix(int64(epoch), 0).UTC()
	}

	return &ts
}

func parseTimestampString(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	for _, layout := range timestampLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return &ts
		}
	}

	return nil
}

// explicitWindow extrai o primeiro início e fim decodificáveis de um registro
func explicitWindow(record domain.RawRecord) (*time.Time, *time.Time) {
	return firstTimestamp(record, scheduleStartKeys), firstTimestamp(record, scheduleEndKeys)
}

func firstTimestamp(record domain.RawRecord, keys []string) *time.Time {
	for _, key := range keys {
		v, ok := record.Field(key)
		if !ok {
			continue
		}

		if ts := ParseTimestamp(v); ts != nil {
			return ts
		}
	}

	return nil
}

// anchoredWindow aplica a invariante da janela: sem início conhecido, o fim
// também é reportado como desconhecido
func anchoredWindow(start, end *time.Time) domain.ResolvedSchedule {
	if start == nil {
		return domain.ResolvedSchedule{}
	}

	return domain.ResolvedSchedule{Start: start, End: end}
}

// dateFromName tenta extrair uma data DD/MM/AAAA embutida no nome livre
func dateFromName(name string) *time.Time {
	if name == "" {
		return nil
	}

	match := dateInNamePattern.FindStringSubmatch(name)
	if match == nil {
		return nil
	}

	day, _ := strconv.Atoi(match[1])
	month, _ := strconv.Atoi(match[2])
	year, _ := strconv.Atoi(match[3])

	if year < 100 {
		year += 2000
	}

	if day < 1 || day > 31 || month < 1 || month > 12 {
		return nil
	}

	ts := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)

	// time.Date normaliza dias fora do mês (ex.: 31/02 vira 03/03)
	if ts.Day() != day || ts.Month() != time.Month(month) {
		return nil
	}

	return &ts
}
