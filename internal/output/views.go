package output

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/EmmerichFrog/bt-home-remote/internal/jsontok"
	"github.com/EmmerichFrog/bt-home-remote/internal/lookup"
	"github.com/EmmerichFrog/bt-home-remote/internal/settings"
)

type valueView struct {
	Key   string `json:"key" yaml:"key"`
	Index *int   `json:"index,omitempty" yaml:"index,omitempty"`
	Kind  string `json:"kind" yaml:"kind"`
	Value string `json:"value" yaml:"value"`
}

type tokenView struct {
	Index  int    `json:"index" yaml:"index"`
	Kind   string `json:"kind" yaml:"kind"`
	Start  int    `json:"start" yaml:"start"`
	End    int    `json:"end" yaml:"end"`
	Size   int    `json:"size" yaml:"size"`
	Parent int    `json:"parent" yaml:"parent"`
	Text   string `json:"text" yaml:"text"`
}

type settingsView struct {
	DeviceName   string `json:"device_name" yaml:"device_name"`
	Period       string `json:"period" yaml:"period"`
	MaxInterval  string `json:"max_interval" yaml:"max_interval"`
	Duration     string `json:"duration" yaml:"duration"`
	RandomizeMAC string `json:"randomize_mac" yaml:"randomize_mac"`
	Address      string `json:"address" yaml:"address"`
}

type countView struct {
	Tokens int `json:"tokens" yaml:"tokens"`
}

// Value prints one resolved value. Text mode prints the raw bytes only.
func (p *Printer) Value(key string, v lookup.Value) error {
	if done, err := p.structured(newValueView(key, nil, v)); done {
		return err
	}
	_, err := fmt.Fprintf(p.w, "%s\n", v.Bytes())
	return err
}

// Element prints the value found at index of the array under key.
func (p *Printer) Element(key string, index int, v lookup.Value) error {
	if done, err := p.structured(newValueView(key, &index, v)); done {
		return err
	}
	_, err := fmt.Fprintf(p.w, "%s\n", v.Bytes())
	return err
}

// Elements prints every extracted element, one per line in text mode.
func (p *Printer) Elements(key string, values []lookup.Value) error {
	views := make([]valueView, len(values))
	for i, v := range values {
		index := i
		views[i] = newValueView(key, &index, v)
	}
	if done, err := p.structured(views); done {
		return err
	}

	for _, v := range values {
		if _, err := fmt.Fprintf(p.w, "%s\n", v.Bytes()); err != nil {
			return err
		}
	}
	return nil
}

// Count prints the number of tokens a document needs.
func (p *Printer) Count(n int) error {
	if done, err := p.structured(countView{Tokens: n}); done {
		return err
	}
	_, err := fmt.Fprintln(p.w, n)
	return err
}

// Tokens prints the token table of doc.
func (p *Printer) Tokens(doc []byte, tokens []jsontok.Token) error {
	views := make([]tokenView, len(tokens))
	for i, tok := range tokens {
		views[i] = tokenView{
			Index:  i,
			Kind:   tok.Kind.String(),
			Start:  tok.Start,
			End:    tok.End,
			Size:   tok.Size,
			Parent: tok.Parent,
			Text:   string(tok.Bytes(doc)),
		}
	}
	if done, err := p.structured(views); done {
		return err
	}

	tw := tabwriter.NewWriter(p.w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tKIND\tSTART\tEND\tSIZE\tPARENT\tTEXT")
	for _, v := range views {
		fmt.Fprintf(tw, "%d\t%s\t%d\t%d\t%d\t%d\t%s\n", v.Index, v.Kind, v.Start, v.End, v.Size, v.Parent, strconv.Quote(v.Text))
	}
	return tw.Flush()
}

// Settings prints the effective configuration and the address it advertises.
func (p *Printer) Settings(s settings.Settings, addr settings.Address) error {
	view := settingsView{
		DeviceName:   s.DeviceName,
		Period:       s.PeriodName(),
		MaxInterval:  s.MaxInterval().String(),
		Duration:     s.DurationName(),
		RandomizeMAC: s.RandomizeMACName(),
		Address:      addr.String(),
	}
	if done, err := p.structured(view); done {
		return err
	}

	tw := tabwriter.NewWriter(p.w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "Device name:\t%s\n", view.DeviceName)
	fmt.Fprintf(tw, "Period:\t%s (max %s)\n", view.Period, view.MaxInterval)
	fmt.Fprintf(tw, "Duration:\t%s\n", view.Duration)
	fmt.Fprintf(tw, "Randomize MAC:\t%s\n", view.RandomizeMAC)
	fmt.Fprintf(tw, "Address:\t%s\n", view.Address)
	return tw.Flush()
}

func newValueView(key string, index *int, v lookup.Value) valueView {
	return valueView{
		Key:   key,
		Index: index,
		Kind:  v.Kind().String(),
		Value: v.String(),
	}
}
