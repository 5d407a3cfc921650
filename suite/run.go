package suite

import (
	"github.com/bytedance/sonic"
	"github.com/icloudza/gcstrtol"
	log "github.com/sirupsen/logrus"
)

// Outcome 单条用例的执行结果。
type Outcome struct {
	Case   string `json:"case"`
	Passed bool   `json:"passed"`
	Got    Want   `json:"got"`
	Want   Want   `json:"want"`
	Error  string `json:"error,omitempty"`
}

// Report 汇总。
type Report struct {
	Suite    string    `json:"suite"`
	Run      int       `json:"run"`
	Passed   int       `json:"passed"`
	Failed   int       `json:"failed"`
	Outcomes []Outcome `json:"outcomes"`
}

// OK 全部通过。
func (r *Report) OK() bool { return r.Failed == 0 }

// JSON 序列化报告。
func (r *Report) JSON() ([]byte, error) {
	return sonic.ConfigStd.MarshalIndent(r, "", "  ")
}

// Run 依次执行全部用例；失败的用例以 warn 级别记录。
func (s *Suite) Run() *Report {
	rep := &Report{Suite: s.Name, Outcomes: make([]Outcome, 0, len(s.Cases))}
	for _, c := range s.Cases {
		o := runCase(c)
		rep.Run++
		if o.Passed {
			rep.Passed++
			log.WithFields(log.Fields{"suite": s.Name, "case": c.Name}).Debug("case passed")
		} else {
			rep.Failed++
			entry := log.WithFields(log.Fields{
				"suite":         s.Name,
				"case":          c.Name,
				"text":          c.Text,
				"base":          c.Base,
				"want_value":    c.Want.Value,
				"want_consumed": c.Want.Consumed,
				"want_overflow": c.Want.Overflow,
				"got_value":     o.Got.Value,
				"got_consumed":  o.Got.Consumed,
				"got_overflow":  o.Got.Overflow,
			})
			if o.Error != "" {
				entry = entry.WithField("error", o.Error)
			}
			entry.Warn("case failed")
		}
		rep.Outcomes = append(rep.Outcomes, o)
	}
	log.WithFields(log.Fields{
		"suite":  s.Name,
		"run":    rep.Run,
		"passed": rep.Passed,
		"failed": rep.Failed,
	}).Info("suite finished")
	return rep
}

func runCase(c Case) Outcome {
	o := Outcome{Case: c.Name, Want: c.Want}
	bits := c.BitSize
	if bits == 0 {
		bits = 64
	}
	r, err := gcstrtol.ConvertBits(c.Text, c.Base, bits)
	if err != nil {
		o.Error = err.Error()
		return o
	}
	o.Got = Want{Value: r.Value, Consumed: r.N, Overflow: r.Overflow}
	o.Passed = o.Got == c.Want
	return o
}
