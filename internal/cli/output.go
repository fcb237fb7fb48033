package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/urano-b2b/internal/models"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// 输出格式
const (
	FormatText = "text"
	FormatJSON = "json"
)

// ValidFormats 允许的输出格式
var ValidFormats = []string{FormatText, FormatJSON}

var arsPrinter = message.NewPrinter(language.MustParse("es-AR"))

// FormatARS 按阿根廷比索格式输出金额，例如 $ 125.000,00
func FormatARS(m models.Money) string {
	return arsPrinter.Sprintf("$ %v", number.Decimal(m.InexactFloat64(), number.Scale(2)))
}

// FormatDate 输出 dd/mm/yyyy 日期
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format("02/01/2006")
}

// Formatter 命令输出
type Formatter struct {
	Format string
	Out    io.Writer
}

// JSON 是否输出 JSON
func (f *Formatter) JSON() bool {
	return f.Format == FormatJSON
}

// WriteJSON 输出缩进 JSON
func (f *Formatter) WriteJSON(v interface{}) error {
	enc := json.NewEncoder(f.Out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// Printf 输出文本
func (f *Formatter) Printf(format string, args ...interface{}) {
	fmt.Fprintf(f.Out, format, args...)
}

// Table 输出对齐的表格
func (f *Formatter) Table(header []string, rows [][]string) error {
	w := tabwriter.NewWriter(f.Out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, strings.Join(header, "\t"))
	for _, row := range rows {
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}
	return w.Flush()
}

func stockLabel(p models.Product) string {
	if !p.InStock() {
		return "Agotado"
	}
	return fmt.Sprintf("%d", p.Stock)
}
