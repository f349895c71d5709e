package evapiso

import (
	"bytes"
	"strconv"
)

func writeFloat(buf *bytes.Buffer, v float64) {
	buf.WriteString(",")
	buf.WriteString(strconv.FormatFloat(v, 'f', -1, 64))
}

// CSV of the single-volume enrichment curve.
func (r *SweepResult) ToCSV(buf *bytes.Buffer) {
	buf.WriteString("x")
	buf.WriteString(",liquid_2H")
	buf.WriteString(",liquid_18O")
	buf.WriteString(",vapor_2H")
	buf.WriteString(",vapor_18O")
	buf.WriteString("\n")

	for i := 0; i < len(r.X); i++ {
		buf.WriteString(strconv.FormatFloat(r.X[i], 'f', -1, 64))
		writeFloat(buf, r.LiquidH2[i])
		writeFloat(buf, r.LiquidO18[i])
		writeFloat(buf, r.VaporH2[i])
		writeFloat(buf, r.VaporO18[i])
		buf.WriteString("\n")
	}
}

// CSV of the monthly series.
func (r *SeasonalResult) ToCSV(buf *bytes.Buffer) {
	buf.WriteString("month")
	buf.WriteString(",h")
	buf.WriteString(",x")
	buf.WriteString(",atmos_2H")
	buf.WriteString(",atmos_18O")
	buf.WriteString(",liquid_2H")
	buf.WriteString(",liquid_18O")
	buf.WriteString("\n")

	for i := 0; i < len(r.Month); i++ {
		buf.WriteString(strconv.Itoa(r.Month[i]))
		writeFloat(buf, r.H[i])
		writeFloat(buf, r.X[i])
		writeFloat(buf, r.AtmosH2[i])
		writeFloat(buf, r.AtmosO18[i])
		writeFloat(buf, r.LiquidH2[i])
		writeFloat(buf, r.LiquidO18[i])
		buf.WriteString("\n")
	}
}
