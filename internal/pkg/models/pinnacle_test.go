package models

import "testing"

func TestSnapshotCloneIsIndependent(t *testing.T) {
	orig := &PinnacleSnapshot{
		Home: "Boston Red Sox",
		Away: "New York Yankees",
		Periods: map[string]*PinnaclePeriod{
			PeriodKeyFullGame: {
				MoneyLine: &MoneyLineMarket{Home: 1.60, Away: 2.45},
				Spreads:   map[string]*SpreadMarket{"-1.5": {Hdp: -1.5, Home: 2.10, Away: 1.78}},
				Totals:    map[string]*TotalMarket{"8.5": {Points: 8.5, Over: 1.91, Under: 1.91}},
			},
		},
	}

	c := orig.Clone()
	period := c.Periods[PeriodKeyFullGame]
	period.MoneyLine.NVPHome = 1.639
	period.Spreads["-1.5"].NVPHome = 2.05
	period.Totals["8.5"].NVPOver = 2.0
	c.Periods[PeriodKeyFirstHalf] = &PinnaclePeriod{}

	base := orig.Periods[PeriodKeyFullGame]
	if base.MoneyLine.NVPHome != 0 || base.Spreads["-1.5"].NVPHome != 0 || base.Totals["8.5"].NVPOver != 0 {
		t.Error("writes to the clone must not reach the original markets")
	}
	if _, ok := orig.Periods[PeriodKeyFirstHalf]; ok {
		t.Error("adding a period to the clone must not reach the original")
	}

	var nilSnap *PinnacleSnapshot
	if nilSnap.Clone() != nil {
		t.Error("cloning a nil snapshot must return nil")
	}
}
