// Package table implementa uma tabela genérica ordenável sobre qualquer
// sequência de registros homogêneos, dirigida por descritores de coluna.
package table

import (
	"fmt"
	"sort"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortType define como os valores de uma coluna são comparados.
type SortType string

const (
	SortString SortType = "string"
	SortNumber SortType = "number"
	SortDate   SortType = "date"
)

// Direction é a direção de ordenação ativa.
type Direction string

const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

// Column descreve uma coluna da tabela. Value extrai o valor bruto usado
// na ordenação; Render formata a célula. Ambos são funções puras.
type Column[R any] struct {
	Key      string
	Header   string
	Sortable bool
	SortType SortType
	Value    func(R) any
	Render   func(R) string
}

// Sort identifica a coluna e direção de ordenação.
type Sort struct {
	Key       string
	Direction Direction
}

// Rendered é a saída pronta para exibição: cabeçalhos (incluindo a coluna
// de índice 1-based) e linhas formatadas, ou a mensagem de vazio.
type Rendered struct {
	Headers      []string   `json:"headers"`
	Rows         [][]string `json:"rows"`
	EmptyMessage string     `json:"empty_message,omitempty"`
	Sort         *Sort      `json:"sort,omitempty"`
}

// Table mantém os registros, os descritores de coluna e o estado transiente
// de ordenação (coluna ativa e direção). O estado pertence exclusivamente à
// instância e é reiniciado quando o conjunto de colunas muda.
type Table[R any] struct {
	rows         []R
	columns      []Column[R]
	emptyMessage string

	activeKey string
	direction Direction

	collator *collate.Collator
}

// Option configura uma Table na construção.
type Option[R any] func(*Table[R])

// WithDefaultSort define a ordenação inicial da tabela.
func WithDefaultSort[R any](s Sort) Option[R] {
	return func(t *Table[R]) {
		t.activeKey = s.Key
		t.direction = s.Direction
		if t.direction == "" {
			t.direction = Ascending
		}
	}
}

// WithEmptyMessage define a mensagem exibida quando não há registros.
func WithEmptyMessage[R any](msg string) Option[R] {
	return func(t *Table[R]) {
		t.emptyMessage = msg
	}
}

// New cria uma tabela sobre rows com os descritores de coluna informados.
// Sem DefaultSort a tabela preserva a ordem original dos registros.
func New[R any](rows []R, columns []Column[R], opts ...Option[R]) *Table[R] {
	t := &Table[R]{
		rows:         rows,
		columns:      columns,
		emptyMessage: "No data available",
		collator:     collate.New(language.English),
	}

	for _, opt := range opts {
		opt(t)
	}

	return t
}

// SetColumns substitui o conjunto de colunas e reinicia o estado de
// ordenação, já que a coluna ativa pode não existir mais.
func (t *Table[R]) SetColumns(columns []Column[R]) {
	t.columns = columns
	t.activeKey = ""
	t.direction = ""
}

// Click processa um clique no cabeçalho de uma coluna. Se a coluna já é a
// ativa, inverte a direção; caso contrário ativa em ordem ascendente.
// Cliques em colunas não ordenáveis ou inexistentes são ignorados.
func (t *Table[R]) Click(key string) {
	col := t.findColumn(key)
	if col == nil || !col.Sortable {
		return
	}

	if t.activeKey == key {
		if t.direction == Ascending {
			t.direction = Descending
		} else {
			t.direction = Ascending
		}
		return
	}

	t.activeKey = key
	t.direction = Ascending
}

// ActiveSort retorna a ordenação ativa, ou nil se a tabela está na ordem
// original.
func (t *Table[R]) ActiveSort() *Sort {
	if t.activeKey == "" {
		return nil
	}
	return &Sort{Key: t.activeKey, Direction: t.direction}
}

// Rows retorna uma cópia dos registros na ordem de exibição atual. A
// ordenação é estável: empates preservam a ordem relativa original.
func (t *Table[R]) Rows() []R {
	out := make([]R, len(t.rows))
	copy(out, t.rows)

	col := t.findColumn(t.activeKey)
	if col == nil || !col.Sortable {
		return out
	}

	sort.SliceStable(out, func(i, j int) bool {
		cmp := t.compare(col, out[i], out[j])
		if t.direction == Descending {
			return cmp > 0
		}
		return cmp < 0
	})

	return out
}

// Render produz a tabela formatada com a coluna de índice 1-based. Entrada
// vazia produz apenas a mensagem configurada, sem cabeçalhos.
func (t *Table[R]) Render() Rendered {
	if len(t.rows) == 0 {
		return Rendered{EmptyMessage: t.emptyMessage}
	}

	headers := make([]string, 0, len(t.columns)+1)
	headers = append(headers, "#")
	for _, col := range t.columns {
		headers = append(headers, col.Header)
	}

	ordered := t.Rows()
	rows := make([][]string, 0, len(ordered))
	for i, record := range ordered {
		cells := make([]string, 0, len(t.columns)+1)
		cells = append(cells, fmt.Sprintf("%d", i+1))
		for _, col := range t.columns {
			cells = append(cells, t.renderCell(col, record))
		}
		rows = append(rows, cells)
	}

	return Rendered{Headers: headers, Rows: rows, Sort: t.ActiveSort()}
}

func (t *Table[R]) findColumn(key string) *Column[R] {
	if key == "" {
		return nil
	}
	for i := range t.columns {
		if t.columns[i].Key == key {
			return &t.columns[i]
		}
	}
	return nil
}

func (t *Table[R]) renderCell(col Column[R], record R) string {
	if col.Render != nil {
		return col.Render(record)
	}
	if col.Value != nil {
		return fmt.Sprintf("%v", col.Value(record))
	}
	return ""
}

// compare compara dois registros pelo valor da coluna, ciente do tipo
// declarado. Valores ausentes valem a sentinela mínima do tipo; a comparação
// nunca gera pânico.
func (t *Table[R]) compare(col *Column[R], a, b R) int {
	var av, bv any
	if col.Value != nil {
		av = col.Value(a)
		bv = col.Value(b)
	}

	switch col.SortType {
	case SortNumber:
		return compareFloats(asFloat(av), asFloat(bv))
	case SortDate:
		at, aok := asTime(av)
		bt, bok := asTime(bv)
		// Datas não interpretáveis comparam como iguais
		if !aok || !bok {
			return 0
		}
		if at.Before(bt) {
			return -1
		}
		if at.After(bt) {
			return 1
		}
		return 0
	default:
		return t.collator.CompareString(asString(av), asString(bv))
	}
}

func compareFloats(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func asString(v any) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}

func asFloat(v any) float64 {
	switch n := v.(type) {
	case nil:
		return 0
	case int:
		return float64(n)
	case int32:
		return float64(n)
	case int64:
		return float64(n)
	case float32:
		return float64(n)
	case float64:
		return n
	default:
		return 0
	}
}

var dateLayouts = []string{time.DateOnly, time.RFC3339, "01/02/2006"}

// asTime converte o valor para um instante. Valores ausentes valem a data
// mínima; strings não vazias que não puderem ser interpretadas retornam
// ok=false para que a comparação as trate como iguais.
func asTime(v any) (time.Time, bool) {
	switch d := v.(type) {
	case nil:
		return time.Time{}, true
	case time.Time:
		return d, true
	case *time.Time:
		if d == nil {
			return time.Time{}, true
		}
		return *d, true
	case string:
		if d == "" {
			return time.Time{}, true
		}
		for _, layout := range dateLayouts {
			if parsed, err := time.Parse(layout, d); err == nil {
				return parsed, true
			}
		}
		return time.Time{}, false
	default:
		return time.Time{}, false
	}
}
