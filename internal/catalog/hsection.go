package catalog

// Hot-rolled H sections, GB/T 11263-2017. Params are h, b, s (web), t (flange) in mm.

// HW is the wide-flange series.
var HW = &Table{
	Name:    "HW",
	Columns: []string{"h", "b", "s", "t"},
	Records: []Record{
		{Name: "HW100*100", Params: []float64{100, 100, 6, 8}, Weight: 16.9, Area: 0.574},
		{Name: "HW125*125", Params: []float64{125, 125, 6.5, 9}, Weight: 23.6, Area: 0.723},
		{Name: "HW150*150", Params: []float64{150, 150, 7, 10}, Weight: 31.1, Area: 0.872},
		{Name: "HW175*175", Params: []float64{175, 175, 7.5, 11}, Weight: 40.4, Area: 1.01},
		{Name: "HW200*200", Params: []float64{200, 200, 8, 12}, Weight: 49.9, Area: 1.16},
		{Name: "HW200*200", Marked: true, Params: []float64{200, 204, 12, 12}, Weight: 56.2, Area: 1.17},
		{Name: "HW250*250", Marked: true, Params: []float64{244, 252, 11, 11}, Weight: 63.8, Area: 1.45},
		{Name: "HW250*250", Params: []float64{250, 250, 9, 14}, Weight: 71.8, Area: 1.46},
		{Name: "HW250*250", Marked: true, Params: []float64{250, 255, 14, 14}, Weight: 81.6, Area: 1.47},
		{Name: "HW300*300", Marked: true, Params: []float64{294, 302, 12, 12}, Weight: 83.5, Area: 1.75},
		{Name: "HW300*300", Params: []float64{300, 300, 10, 15}, Weight: 93.0, Area: 1.76},
		{Name: "HW300*300", Marked: true, Params: []float64{300, 305, 15, 15}, Weight: 105, Area: 1.77},
		{Name: "HW350*350", Marked: true, Params: []float64{338, 351, 13, 13}, Weight: 105, Area: 2.03},
		{Name: "HW350*350", Marked: true, Params: []float64{344, 348, 10, 16}, Weight: 113, Area: 2.04},
		{Name: "HW350*350", Marked: true, Params: []float64{344, 354, 16, 16}, Weight: 129, Area: 2.05},
		{Name: "HW350*350", Params: []float64{350, 350, 12, 19}, Weight: 135, Area: 2.05},
		{Name: "HW350*350", Marked: true, Params: []float64{350, 357, 19, 19}, Weight: 154, Area: 2.07},
		{Name: "HW400*400", Marked: true, Params: []float64{388, 402, 15, 15}, Weight: 140, Area: 2.32},
		{Name: "HW400*400", Marked: true, Params: []float64{394, 398, 11, 18}, Weight: 147, Area: 2.32},
		{Name: "HW400*400", Marked: true, Params: []float64{394, 405, 18, 18}, Weight: 168, Area: 2.33},
		{Name: "HW400*400", Params: []float64{400, 400, 13, 21}, Weight: 172, Area: 2.34},
		{Name: "HW400*400", Marked: true, Params: []float64{400, 408, 21, 21}, Weight: 197, Area: 2.35},
		{Name: "HW400*400", Marked: true, Params: []float64{414, 405, 18, 28}, Weight: 232, Area: 2.37},
		{Name: "HW400*400", Marked: true, Params: []float64{428, 407, 20, 35}, Weight: 283, Area: 2.41},
		{Name: "HW400*400", Marked: true, Params: []float64{458, 417, 30, 50}, Weight: 415, Area: 2.49},
		{Name: "HW400*400", Marked: true, Params: []float64{498, 432, 45, 70}, Weight: 604, Area: 2.60},
		{Name: "HW500*500", Marked: true, Params: []float64{492, 465, 15, 20}, Weight: 202, Area: 2.78},
		{Name: "HW500*500", Marked: true, Params: []float64{502, 465, 15, 25}, Weight: 239, Area: 2.80},
		{Name: "HW500*500", Marked: true, Params: []float64{502, 470, 20, 25}, Weight: 259, Area: 2.81},
	},
}

// HM is the medium-flange series.
var HM = &Table{
	Name:    "HM",
	Columns: []string{"h", "b", "s", "t"},
	Records: []Record{
		{Name: "HM150*100", Params: []float64{148, 100, 6, 9}, Weight: 20.7, Area: 0.670},
		{Name: "HM200*150", Params: []float64{194, 150, 6, 9}, Weight: 29.9, Area: 0.962},
		{Name: "HM250*175", Params: []float64{244, 175, 7, 11}, Weight: 43.6, Area: 1.15},
		{Name: "HM300*200", Params: []float64{294, 200, 8, 12}, Weight: 55.8, Area: 1.35},
		{Name: "HM300*200", Marked: true, Params: []float64{298, 201, 9, 14}, Weight: 64.4, Area: 1.36},
		{Name: "HM350*250", Params: []float64{340, 250, 9, 14}, Weight: 78.1, Area: 1.64},
		{Name: "HM400*300", Params: []float64{390, 300, 10, 16}, Weight: 105, Area: 1.94},
		{Name: "HM450*300", Params: []float64{440, 300, 11, 18}, Weight: 121, Area: 2.04},
		{Name: "HM500*300", Marked: true, Params: []float64{482, 300, 11, 15}, Weight: 111, Area: 2.12},
		{Name: "HM500*300", Params: []float64{488, 300, 11, 18}, Weight: 125, Area: 2.13},
		{Name: "HM550*300", Marked: true, Params: []float64{544, 300, 11, 15}, Weight: 116, Area: 2.24},
		{Name: "HM550*300", Marked: true, Params: []float64{550, 300, 11, 18}, Weight: 130, Area: 2.26},
		{Name: "HM600*300", Marked: true, Params: []float64{582, 300, 12, 17}, Weight: 133, Area: 2.32},
		{Name: "HM600*300", Params: []float64{588, 300, 12, 20}, Weight: 147, Area: 2.33},
		{Name: "HM600*300", Marked: true, Params: []float64{594, 302, 14, 23}, Weight: 170, Area: 2.35},
	},
}

// HN is the narrow-flange series.
var HN = &Table{
	Name:    "HN",
	Columns: []string{"h", "b", "s", "t"},
	Records: []Record{
		{Name: "HN100*50", Params: []float64{100, 50, 5, 7}, Weight: 9.30, Area: 0.376},
		{Name: "HN125*60", Params: []float64{125, 60, 6, 8}, Weight: 13.1, Area: 0.464},
		{Name: "HN150*75", Params: []float64{150, 75, 5, 7}, Weight: 14.0, Area: 0.576},
		{Name: "HN175*90", Params: []float64{175, 90, 5, 8}, Weight: 18.0, Area: 0.686},
		{Name: "HN200*100", Marked: true, Params: []float64{198, 99, 4.5, 7}, Weight: 17.8, Area: 0.769},
		{Name: "HN200*100", Params: []float64{200, 100, 5.5, 8}, Weight: 20.9, Area: 0.775},
		{Name: "HN250*125", Marked: true, Params: []float64{248, 124, 5, 8}, Weight: 25.1, Area: 0.968},
		{Name: "HN250*125", Params: []float64{250, 125, 6, 9}, Weight: 29.0, Area: 0.974},
		{Name: "HN300*150", Marked: true, Params: []float64{298, 149, 5.5, 8}, Weight: 32.0, Area: 1.16},
		{Name: "HN300*150", Params: []float64{300, 150, 6.5, 9}, Weight: 36.7, Area: 1.16},
		{Name: "HN350*175", Marked: true, Params: []float64{346, 174, 6, 9}, Weight: 41.2, Area: 1.35},
		{Name: "HN350*175", Params: []float64{350, 175, 7, 11}, Weight: 49.4, Area: 1.36},
		{Name: "HN400*150", Params: []float64{400, 150, 8, 13}, Weight: 55.2, Area: 1.36},
		{Name: "HN400*200", Marked: true, Params: []float64{396, 199, 7, 11}, Weight: 56.1, Area: 1.55},
		{Name: "HN400*200", Params: []float64{400, 200, 8, 13}, Weight: 65.4, Area: 1.56},
		{Name: "HN450*150", Marked: true, Params: []float64{446, 150, 7, 12}, Weight: 52.4, Area: 1.46},
		{Name: "HN450*150", Params: []float64{450, 151, 8, 14}, Weight: 60.8, Area: 1.47},
		{Name: "HN450*200", Marked: true, Params: []float64{446, 199, 8, 12}, Weight: 65.1, Area: 1.65},
		{Name: "HN450*200", Params: []float64{450, 200, 9, 14}, Weight: 74.9, Area: 1.66},
		{Name: "HN500*200", Marked: true, Params: []float64{496, 199, 9, 14}, Weight: 77.9, Area: 1.75},
		{Name: "HN500*200", Params: []float64{500, 200, 10, 16}, Weight: 88.1, Area: 1.76},
		{Name: "HN500*200", Marked: true, Params: []float64{506, 201, 11, 19}, Weight: 102, Area: 1.77},
		{Name: "HN600*200", Marked: true, Params: []float64{596, 199, 10, 15}, Weight: 92.4, Area: 1.95},
		{Name: "HN600*200", Params: []float64{600, 200, 11, 17}, Weight: 103, Area: 1.96},
		{Name: "HN600*200", Marked: true, Params: []float64{606, 201, 12, 20}, Weight: 118, Area: 1.97},
		{Name: "HN700*300", Marked: true, Params: []float64{692, 300, 13, 20}, Weight: 163, Area: 2.53},
		{Name: "HN700*300", Params: []float64{700, 300, 13, 24}, Weight: 182, Area: 2.54},
		{Name: "HN800*300", Marked: true, Params: []float64{792, 300, 14, 22}, Weight: 188, Area: 2.73},
		{Name: "HN800*300", Params: []float64{800, 300, 14, 26}, Weight: 207, Area: 2.74},
		{Name: "HN900*300", Marked: true, Params: []float64{890, 299, 15, 23}, Weight: 210, Area: 2.92},
		{Name: "HN900*300", Params: []float64{900, 300, 16, 28}, Weight: 240, Area: 2.94},
		{Name: "HN900*300", Marked: true, Params: []float64{912, 302, 18, 34}, Weight: 283, Area: 2.97},
	},
}

// HT is the thin-walled series.
var HT = &Table{
	Name:    "HT",
	Columns: []string{"h", "b", "s", "t"},
	Records: []Record{
		{Name: "HT100*50", Params: []float64{95, 48, 3.2, 4.5}, Weight: 5.98, Area: 0.362},
		{Name: "HT100*100", Params: []float64{97, 99, 4, 4.5}, Weight: 9.42, Area: 0.562},
		{Name: "HT125*60", Params: []float64{118, 58, 3.2, 4.5}, Weight: 7.27, Area: 0.448},
		{Name: "HT125*125", Params: []float64{120, 123, 4.5, 6}, Weight: 14.7, Area: 0.701},
		{Name: "HT150*75", Params: []float64{145, 73, 3.2, 4.5}, Weight: 9.00, Area: 0.553},
		{Name: "HT150*100", Params: []float64{139, 97, 3.2, 4.5}, Weight: 10.5, Area: 0.635},
		{Name: "HT150*150", Params: []float64{144, 148, 5, 7}, Weight: 21.8, Area: 0.853},
		{Name: "HT175*90", Params: []float64{168, 88, 3.2, 4.5}, Weight: 10.6, Area: 0.650},
		{Name: "HT175*175", Params: []float64{167, 173, 5, 7}, Weight: 26.2, Area: 0.995},
		{Name: "HT200*100", Params: []float64{193, 98, 3.2, 4.5}, Weight: 12.0, Area: 0.747},
		{Name: "HT200*150", Params: []float64{188, 149, 4.5, 6}, Weight: 20.7, Area: 0.858},
		{Name: "HT200*200", Params: []float64{192, 198, 6, 8}, Weight: 34.3, Area: 1.15},
		{Name: "HT250*125", Params: []float64{244, 124, 4.5, 6}, Weight: 20.3, Area: 0.949},
		{Name: "HT250*175", Params: []float64{238, 173, 4.5, 8}, Weight: 30.7, Area: 1.14},
		{Name: "HT300*150", Params: []float64{294, 148, 4.5, 6}, Weight: 25.0, Area: 1.15},
		{Name: "HT300*200", Params: []float64{286, 198, 6, 8}, Weight: 38.7, Area: 1.33},
		{Name: "HT350*175", Params: []float64{340, 173, 4.5, 6}, Weight: 29.0, Area: 1.34},
		{Name: "HT400*150", Params: []float64{390, 148, 6, 8}, Weight: 37.3, Area: 1.34},
		{Name: "HT400*200", Params: []float64{390, 198, 6, 8}, Weight: 43.6, Area: 1.54},
	},
}
