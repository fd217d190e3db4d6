package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-connectivity/stats/connectivity"
)

var errRaggedMatrix = errors.New("rows have different lengths")

// readMatrix parses whitespace-separated rows of floats.
func readMatrix(r io.Reader) ([][]float64, error) {
	var rows [][]float64
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 64*1024*1024)

	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		fields := strings.Fields(text)
		row := make([]float64, len(fields))
		for i, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d, column %d: %w", line, i+1, err)
			}
			row[i] = v
		}
		if len(rows) > 0 && len(row) != len(rows[0]) {
			return nil, fmt.Errorf("line %d: %w: %d values, want %d", line, errRaggedMatrix, len(row), len(rows[0]))
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return rows, nil
}

func readMatrixFile(path string, stdin io.Reader) ([][]float64, error) {
	if path == "-" {
		return readMatrix(stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rows, err := readMatrix(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rows, nil
}

// readQuery reads every value of a file, in row order, as one series.
func readQuery(path string) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var query []float64
	sc := bufio.NewScanner(f)
	sc.Split(bufio.ScanWords)
	for sc.Scan() {
		v, err := strconv.ParseFloat(sc.Text(), 64)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		query = append(query, v)
	}
	return query, sc.Err()
}

// matrixLayout maps parsed rows onto an engine layout. Rows are packed
// into one row-major buffer; columns keep one buffer per time point.
func matrixLayout(rows [][]float64, name string) (connectivity.Layout, error) {
	width := 0
	if len(rows) > 0 {
		width = len(rows[0])
	}

	switch name {
	case "rows":
		data := make([]float64, 0, len(rows)*width)
		for _, r := range rows {
			data = append(data, r...)
		}
		return connectivity.Interleaved{
			Data:          data,
			SeriesCount:   len(rows),
			SeriesStride:  width,
			Length:        width,
			ElementStride: 1,
		}, nil
	case "columns":
		return connectivity.PerTimePoint{
			TimePoints:   rows,
			SeriesCount:  width,
			SeriesStride: 1,
		}, nil
	default:
		return nil, fmt.Errorf("unknown layout %q (want rows or columns)", name)
	}
}
