package catalog

// Hot-rolled I beams and channels, GB/T 706-2016. Params are h, b, s, t in mm.
// Area is the outer painting surface per metre.

// IBeam lists the I-beam series; names are the size code with its suffix.
var IBeam = &Table{
	Name:    "I",
	Columns: []string{"h", "b", "s", "t"},
	Records: []Record{
		{Name: "I10", Params: []float64{100, 68, 4.5, 7.6}, Weight: 11.3, Area: 0.463},
		{Name: "I12", Params: []float64{120, 74, 5, 8.4}, Weight: 14.0, Area: 0.526},
		{Name: "I12.6", Params: []float64{126, 74, 5, 8.4}, Weight: 14.2, Area: 0.538},
		{Name: "I14", Params: []float64{140, 80, 5.5, 9.1}, Weight: 16.9, Area: 0.589},
		{Name: "I16", Params: []float64{160, 88, 6, 9.9}, Weight: 20.5, Area: 0.66},
		{Name: "I18", Params: []float64{180, 94, 6.5, 10.7}, Weight: 24.1, Area: 0.723},
		{Name: "I20a", Params: []float64{200, 100, 7, 11.4}, Weight: 27.9, Area: 0.786},
		{Name: "I20b", Params: []float64{200, 102, 9, 11.4}, Weight: 31.1, Area: 0.79},
		{Name: "I22a", Params: []float64{220, 110, 7.5, 12.3}, Weight: 33.1, Area: 0.865},
		{Name: "I22b", Params: []float64{220, 112, 9.5, 12.3}, Weight: 36.5, Area: 0.869},
		{Name: "I24a", Params: []float64{240, 116, 8, 13}, Weight: 37.5, Area: 0.928},
		{Name: "I24b", Params: []float64{240, 118, 10, 13}, Weight: 41.2, Area: 0.932},
		{Name: "I25a", Params: []float64{250, 116, 8, 13}, Weight: 38.1, Area: 0.948},
		{Name: "I25b", Params: []float64{250, 118, 10, 13}, Weight: 42.0, Area: 0.952},
		{Name: "I27a", Params: []float64{270, 122, 8.5, 13.7}, Weight: 42.8, Area: 1.011},
		{Name: "I27b", Params: []float64{270, 124, 10.5, 13.7}, Weight: 47.0, Area: 1.015},
		{Name: "I28a", Params: []float64{280, 122, 8.5, 13.7}, Weight: 43.5, Area: 1.031},
		{Name: "I28b", Params: []float64{280, 124, 10.5, 13.7}, Weight: 47.9, Area: 1.035},
		{Name: "I30a", Params: []float64{300, 126, 9, 14.4}, Weight: 48.1, Area: 1.086},
		{Name: "I30b", Params: []float64{300, 128, 11, 14.4}, Weight: 52.8, Area: 1.09},
		{Name: "I30c", Params: []float64{300, 130, 13, 14.4}, Weight: 57.5, Area: 1.094},
		{Name: "I32a", Params: []float64{320, 130, 9.5, 15}, Weight: 52.7, Area: 1.141},
		{Name: "I32b", Params: []float64{320, 132, 11.5, 15}, Weight: 57.7, Area: 1.145},
		{Name: "I32c", Params: []float64{320, 134, 13.5, 15}, Weight: 62.7, Area: 1.149},
		{Name: "I36a", Params: []float64{360, 136, 10, 15.8}, Weight: 60.0, Area: 1.244},
		{Name: "I36b", Params: []float64{360, 138, 12, 15.8}, Weight: 65.7, Area: 1.248},
		{Name: "I36c", Params: []float64{360, 140, 14, 15.8}, Weight: 71.3, Area: 1.252},
		{Name: "I40a", Params: []float64{400, 142, 10.5, 16.5}, Weight: 67.6, Area: 1.347},
		{Name: "I40b", Params: []float64{400, 144, 12.5, 16.5}, Weight: 73.8, Area: 1.351},
		{Name: "I40c", Params: []float64{400, 146, 14.5, 16.5}, Weight: 80.1, Area: 1.355},
		{Name: "I45a", Params: []float64{450, 150, 11.5, 18}, Weight: 80.4, Area: 1.477},
		{Name: "I45b", Params: []float64{450, 152, 13.5, 18}, Weight: 87.4, Area: 1.481},
		{Name: "I45c", Params: []float64{450, 154, 15.5, 18}, Weight: 94.5, Area: 1.485},
		{Name: "I50a", Params: []float64{500, 158, 12, 20}, Weight: 93.6, Area: 1.608},
		{Name: "I50b", Params: []float64{500, 160, 14, 20}, Weight: 101, Area: 1.612},
		{Name: "I50c", Params: []float64{500, 162, 16, 20}, Weight: 109, Area: 1.616},
		{Name: "I55a", Params: []float64{550, 166, 12.5, 21}, Weight: 105, Area: 1.739},
		{Name: "I55b", Params: []float64{550, 168, 14.5, 21}, Weight: 114, Area: 1.743},
		{Name: "I55c", Params: []float64{550, 170, 16.5, 21}, Weight: 123, Area: 1.747},
		{Name: "I56a", Params: []float64{560, 166, 12.5, 21}, Weight: 106, Area: 1.759},
		{Name: "I56b", Params: []float64{560, 168, 14.5, 21}, Weight: 115, Area: 1.763},
		{Name: "I56c", Params: []float64{560, 170, 16.5, 21}, Weight: 124, Area: 1.767},
		{Name: "I63a", Params: []float64{630, 176, 13, 22}, Weight: 121, Area: 1.938},
		{Name: "I63b", Params: []float64{630, 178, 15, 22}, Weight: 131, Area: 1.942},
		{Name: "I63c", Params: []float64{630, 180, 17, 22}, Weight: 141, Area: 1.946},
	},
}

// Channel lists the channel series; names carry the C prefix used in drawings.
var Channel = &Table{
	Name:    "C",
	Columns: []string{"h", "b", "s", "t"},
	Records: []Record{
		{Name: "C5", Params: []float64{50, 37, 4.5, 7}, Weight: 5.44, Area: 0.239},
		{Name: "C6.3", Params: []float64{63, 40, 4.8, 7.5}, Weight: 6.63, Area: 0.276},
		{Name: "C6.5", Params: []float64{65, 40, 4.3, 7.5}, Weight: 6.51, Area: 0.281},
		{Name: "C8", Params: []float64{80, 43, 5, 8}, Weight: 8.04, Area: 0.322},
		{Name: "C10", Params: []float64{100, 48, 5.3, 8.5}, Weight: 10.0, Area: 0.381},
		{Name: "C12", Params: []float64{120, 53, 5.5, 9}, Weight: 12.1, Area: 0.441},
		{Name: "C12.6", Params: []float64{126, 53, 5.5, 9}, Weight: 12.3, Area: 0.453},
		{Name: "C14a", Params: []float64{140, 58, 6, 9.5}, Weight: 14.5, Area: 0.5},
		{Name: "C14b", Params: []float64{140, 60, 8, 9.5}, Weight: 16.7, Area: 0.504},
		{Name: "C16a", Params: []float64{160, 63, 6.5, 10}, Weight: 17.2, Area: 0.559},
		{Name: "C16b", Params: []float64{160, 65, 8.5, 10}, Weight: 19.8, Area: 0.563},
		{Name: "C18a", Params: []float64{180, 68, 7, 10.5}, Weight: 20.2, Area: 0.618},
		{Name: "C18b", Params: []float64{180, 70, 9, 10.5}, Weight: 23.0, Area: 0.622},
		{Name: "C20a", Params: []float64{200, 73, 7, 11}, Weight: 22.6, Area: 0.678},
		{Name: "C20b", Params: []float64{200, 75, 9, 11}, Weight: 25.8, Area: 0.682},
		{Name: "C22a", Params: []float64{220, 77, 7, 11.5}, Weight: 25.0, Area: 0.734},
		{Name: "C22b", Params: []float64{220, 79, 9, 11.5}, Weight: 28.5, Area: 0.738},
		{Name: "C24a", Params: []float64{240, 78, 7, 12}, Weight: 26.9, Area: 0.778},
		{Name: "C24b", Params: []float64{240, 80, 9, 12}, Weight: 30.6, Area: 0.782},
		{Name: "C24c", Params: []float64{240, 82, 11, 12}, Weight: 34.4, Area: 0.786},
		{Name: "C25a", Params: []float64{250, 78, 7, 12}, Weight: 27.4, Area: 0.798},
		{Name: "C25b", Params: []float64{250, 80, 9, 12}, Weight: 31.3, Area: 0.802},
		{Name: "C25c", Params: []float64{250, 82, 11, 12}, Weight: 35.3, Area: 0.806},
		{Name: "C27a", Params: []float64{270, 82, 7.5, 12.5}, Weight: 30.8, Area: 0.853},
		{Name: "C27b", Params: []float64{270, 84, 9.5, 12.5}, Weight: 35.1, Area: 0.857},
		{Name: "C27c", Params: []float64{270, 86, 11.5, 12.5}, Weight: 39.3, Area: 0.861},
		{Name: "C28a", Params: []float64{280, 82, 7.5, 12.5}, Weight: 31.4, Area: 0.873},
		{Name: "C28b", Params: []float64{280, 84, 9.5, 12.5}, Weight: 35.8, Area: 0.877},
		{Name: "C28c", Params: []float64{280, 86, 11.5, 12.5}, Weight: 40.2, Area: 0.881},
		{Name: "C30a", Params: []float64{300, 85, 7.5, 13.5}, Weight: 34.5, Area: 0.925},
		{Name: "C30b", Params: []float64{300, 87, 9.5, 13.5}, Weight: 39.2, Area: 0.929},
		{Name: "C30c", Params: []float64{300, 89, 11.5, 13.5}, Weight: 43.9, Area: 0.933},
		{Name: "C32a", Params: []float64{320, 88, 8, 14}, Weight: 38.1, Area: 0.976},
		{Name: "C32b", Params: []float64{320, 90, 10, 14}, Weight: 43.1, Area: 0.98},
		{Name: "C32c", Params: []float64{320, 92, 12, 14}, Weight: 48.1, Area: 0.984},
		{Name: "C36a", Params: []float64{360, 96, 9, 16}, Weight: 47.8, Area: 1.086},
		{Name: "C36b", Params: []float64{360, 98, 11, 16}, Weight: 53.5, Area: 1.09},
		{Name: "C36c", Params: []float64{360, 100, 13, 16}, Weight: 59.1, Area: 1.094},
		{Name: "C40a", Params: []float64{400, 100, 10.5, 18}, Weight: 58.9, Area: 1.179},
		{Name: "C40b", Params: []float64{400, 102, 12.5, 18}, Weight: 65.2, Area: 1.183},
		{Name: "C40c", Params: []float64{400, 104, 14.5, 18}, Weight: 71.5, Area: 1.187},
	},
}
