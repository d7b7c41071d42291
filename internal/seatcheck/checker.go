package seatcheck

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"go-seat-identifier/config"
	"go-seat-identifier/internal/model"
	apperrors "go-seat-identifier/pkg/app_errors"
	"go-seat-identifier/pkg/logger"

	"go.uber.org/zap"
)

// Report 單一輸入的檢查結果
type Report struct {
	Input  string            `json:"input"`
	Valid  bool              `json:"valid"`
	Row    string            `json:"row,omitempty"`
	Number string            `json:"number,omitempty"`
	Errors []apperrors.Error `json:"errors,omitempty"`
}

type Summary struct {
	Checked int `json:"checked"`
	Valid   int `json:"valid"`
	Invalid int `json:"invalid"`
}

type Checker interface {
	// 檢查參數列出的座位名稱
	CheckAll(ctx context.Context, inputs []string, w io.Writer) (Summary, error)
	// 逐行讀取並檢查，每行一個座位名稱
	CheckLines(ctx context.Context, r io.Reader, w io.Writer) (Summary, error)
}

type CheckerImpl struct {
	format string
	log    *zap.Logger
}

func NewChecker(cfg config.SeatCheckConfig) Checker {
	format := cfg.Format
	if format == "" {
		format = config.FormatText
	}
	return &CheckerImpl{
		format: format,
		log:    logger.WithComponent("seatcheck"),
	}
}

// Check 解析單一座位名稱並轉成 Report
func Check(input string) Report {
	parsed := model.ConvertSeatNameFromString(&input)
	if parsed.IsFailure() {
		return Report{Input: input, Errors: parsed.Errors()}
	}
	seat := parsed.Value()
	return Report{
		Input:  input,
		Valid:  true,
		Row:    seat.Row().Value(),
		Number: seat.Number().Value(),
	}
}

func (c *CheckerImpl) CheckAll(ctx context.Context, inputs []string, w io.Writer) (Summary, error) {
	var summary Summary
	for _, input := range inputs {
		if err := ctx.Err(); err != nil {
			return summary, err
		}
		if err := c.handle(input, w, &summary); err != nil {
			return summary, err
		}
	}
	c.logSummary(summary)
	return summary, nil
}

// CheckLines 用 bufio.Reader 讀取，單行長度沒有上限；過長的行照常檢查並回報
func (c *CheckerImpl) CheckLines(ctx context.Context, r io.Reader, w io.Writer) (Summary, error) {
	var summary Summary
	reader := bufio.NewReader(r)
	for {
		if err := ctx.Err(); err != nil {
			return summary, err
		}
		line, readErr := reader.ReadString('\n')
		if readErr != nil && readErr != io.EOF {
			return summary, fmt.Errorf("read input: %w", readErr)
		}
		// 最後一行沒有換行符號時仍需檢查
		if line != "" {
			input := strings.TrimRight(line, "\r\n")
			if err := c.handle(input, w, &summary); err != nil {
				return summary, err
			}
		}
		if readErr == io.EOF {
			break
		}
	}
	c.logSummary(summary)
	return summary, nil
}

func (c *CheckerImpl) handle(input string, w io.Writer, summary *Summary) error {
	report := Check(input)
	summary.Checked++
	if report.Valid {
		summary.Valid++
	} else {
		summary.Invalid++
		c.log.Debug("Invalid seat name", zap.String("input", input), logger.Errors("errors", report.Errors))
	}
	if err := c.write(w, report); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

func (c *CheckerImpl) write(w io.Writer, report Report) error {
	if c.format == config.FormatJSON {
		return json.NewEncoder(w).Encode(report)
	}
	_, err := fmt.Fprintln(w, FormatText(report))
	return err
}

func (c *CheckerImpl) logSummary(summary Summary) {
	c.log.Info("Seat names checked",
		zap.Int("checked", summary.Checked),
		zap.Int("valid", summary.Valid),
		zap.Int("invalid", summary.Invalid),
	)
}

// FormatText 輸出格式：OK <row> <number> 或 INVALID "<input>" <code>: <message>; ...
func FormatText(report Report) string {
	if report.Valid {
		return fmt.Sprintf("OK %s %s", report.Row, report.Number)
	}
	msgs := make([]string, 0, len(report.Errors))
	for _, e := range report.Errors {
		msgs = append(msgs, e.Error())
	}
	return fmt.Sprintf("INVALID %q %s", report.Input, strings.Join(msgs, "; "))
}
