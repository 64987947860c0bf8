package data

import (
	"fmt"
	"io"
	"os"

	"github.com/go-gota/gota/dataframe"
)

// NaNValues are the CSV cells read as missing.
var NaNValues = []string{"", "NA", "NaN", "nan", "N/A", "null"}

// ReadCSV reads a headed CSV, detecting each column's kind.
func ReadCSV(r io.Reader) (dataframe.DataFrame, error) {
	df := dataframe.ReadCSV(r,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(true),
		dataframe.NaNValues(NaNValues),
	)
	if df.Err != nil {
		return df, fmt.Errorf("read csv: %w", df.Err)
	}
	return df, nil
}

// LoadCSV opens path and calls ReadCSV.
func LoadCSV(path string) (dataframe.DataFrame, error) {
	f, err := os.Open(path)
	if err != nil {
		return dataframe.DataFrame{}, err
	}
	defer f.Close()
	return ReadCSV(f)
}

// WriteCSV writes df with a header row. Missing cells are written as NaN.
func WriteCSV(df dataframe.DataFrame, w io.Writer) error {
	if df.Err != nil {
		return df.Err
	}
	return df.WriteCSV(w, dataframe.WriteHeader(true))
}

// SaveCSV creates path and writes df to it.
func SaveCSV(df dataframe.DataFrame, path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return WriteCSV(df, f)
}
