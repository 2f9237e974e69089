package sheets

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/go-gota/gota/dataframe"
	"golang.org/x/text/encoding/charmap"
)

// LocalSource reads the two tables from CSV files on disk. Older exports of
// the workbook were saved as Windows-1252; Latin1 switches the decoder for
// those.
type LocalSource struct {
	OrdersPath    string
	ProcessesPath string
	Latin1        bool
}

func (s LocalSource) FetchRawTables(ctx context.Context) (dataframe.DataFrame, dataframe.DataFrame, error) {
	orders, err := s.openFileAndDecode(s.OrdersPath)
	if err != nil {
		return dataframe.DataFrame{}, dataframe.DataFrame{}, fmt.Errorf("read ot_master: %w", err)
	}

	processes, err := s.openFileAndDecode(s.ProcessesPath)
	if err != nil {
		return dataframe.DataFrame{}, dataframe.DataFrame{}, fmt.Errorf("read procesos: %w", err)
	}

	return orders, processes, nil
}

func (s LocalSource) openFileAndDecode(path string) (dataframe.DataFrame, error) {
	file, err := os.Open(path)
	if err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("failed to open file %s: %w", path, err)
	}
	defer file.Close()

	var reader io.Reader = file
	if s.Latin1 {
		reader = charmap.Windows1252.NewDecoder().Reader(file)
	}

	df, err := readTable(reader)
	if err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("parse %s: %w", path, err)
	}

	return df, nil
}
