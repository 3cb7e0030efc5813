package chart_test

import (
	"reflect"
	"testing"

	"github.com/KaramelBytes/csvplot-cli/internal/chart"
	"github.com/KaramelBytes/csvplot-cli/internal/dataset"
)

func TestClassifyKeepsOrder(t *testing.T) {
	numeric, all := chart.Classify(weather(t))
	if !reflect.DeepEqual(numeric, []string{"temp", "humidity", "pressure"}) {
		t.Fatalf("numeric = %v", numeric)
	}
	if !reflect.DeepEqual(all, []string{"date", "temp", "humidity", "pressure"}) {
		t.Fatalf("all = %v", all)
	}
}

func TestYChoicesFallsBackToAllColumns(t *testing.T) {
	ds, err := dataset.New("names.csv", []string{"first", "last"}, [][]string{{"Ada", "Lovelace"}}, dataset.DefaultOptions())
	if err != nil {
		t.Fatalf("dataset: %v", err)
	}
	numeric, _ := chart.Classify(ds)
	if len(numeric) != 0 {
		t.Fatalf("numeric = %v, want none", numeric)
	}
	if got := chart.YChoices(ds); !reflect.DeepEqual(got, []string{"first", "last"}) {
		t.Fatalf("choices = %v", got)
	}
	if got := chart.YChoices(weather(t)); len(got) != 3 {
		t.Fatalf("choices = %v, want numeric columns", got)
	}
}
