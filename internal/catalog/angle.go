package catalog

// Angle lists hot-rolled equal and unequal leg angles, GB/T 706-2016.
// Params are h (long leg), b (short leg), t in mm. Equal leg rows are named
// L{b}*{t}, unequal rows L{h}*{b}*{t}.
var Angle = &Table{
	Name:    "L",
	Columns: []string{"h", "b", "t"},
	Records: []Record{
		{Name: "L20*3", Params: []float64{20, 20, 3}, Weight: 0.889, Area: 0.078},
		{Name: "L20*4", Params: []float64{20, 20, 4}, Weight: 1.145, Area: 0.077},
		{Name: "L25*3", Params: []float64{25, 25, 3}, Weight: 1.124, Area: 0.098},
		{Name: "L25*4", Params: []float64{25, 25, 4}, Weight: 1.459, Area: 0.097},
		{Name: "L30*3", Params: []float64{30, 30, 3}, Weight: 1.373, Area: 0.117},
		{Name: "L30*4", Params: []float64{30, 30, 4}, Weight: 1.787, Area: 0.117},
		{Name: "L36*3", Params: []float64{36, 36, 3}, Weight: 1.656, Area: 0.141},
		{Name: "L36*4", Params: []float64{36, 36, 4}, Weight: 2.163, Area: 0.141},
		{Name: "L36*5", Params: []float64{36, 36, 5}, Weight: 2.655, Area: 0.141},
		{Name: "L40*3", Params: []float64{40, 40, 3}, Weight: 1.852, Area: 0.157},
		{Name: "L40*4", Params: []float64{40, 40, 4}, Weight: 2.423, Area: 0.157},
		{Name: "L40*5", Params: []float64{40, 40, 5}, Weight: 2.977, Area: 0.156},
		{Name: "L45*3", Params: []float64{45, 45, 3}, Weight: 2.088, Area: 0.177},
		{Name: "L45*4", Params: []float64{45, 45, 4}, Weight: 2.737, Area: 0.177},
		{Name: "L45*5", Params: []float64{45, 45, 5}, Weight: 3.369, Area: 0.176},
		{Name: "L45*6", Params: []float64{45, 45, 6}, Weight: 3.985, Area: 0.176},
		{Name: "L50*3", Params: []float64{50, 50, 3}, Weight: 2.332, Area: 0.197},
		{Name: "L50*4", Params: []float64{50, 50, 4}, Weight: 3.059, Area: 0.196},
		{Name: "L50*5", Params: []float64{50, 50, 5}, Weight: 3.77, Area: 0.196},
		{Name: "L50*6", Params: []float64{50, 50, 6}, Weight: 4.465, Area: 0.196},
		{Name: "L56*3", Params: []float64{56, 56, 3}, Weight: 2.624, Area: 0.221},
		{Name: "L56*4", Params: []float64{56, 56, 4}, Weight: 3.446, Area: 0.22},
		{Name: "L56*5", Params: []float64{56, 56, 5}, Weight: 4.251, Area: 0.22},
		{Name: "L56*6", Params: []float64{56, 56, 6}, Weight: 5.04, Area: 0.22},
		{Name: "L56*7", Params: []float64{56, 56, 7}, Weight: 5.812, Area: 0.219},
		{Name: "L56*8", Params: []float64{56, 56, 8}, Weight: 6.568, Area: 0.219},
		{Name: "L63*4", Params: []float64{63, 63, 4}, Weight: 3.907, Area: 0.248},
		{Name: "L63*5", Params: []float64{63, 63, 5}, Weight: 4.823, Area: 0.248},
		{Name: "L63*6", Params: []float64{63, 63, 6}, Weight: 5.721, Area: 0.247},
		{Name: "L63*7", Params: []float64{63, 63, 7}, Weight: 6.603, Area: 0.247},
		{Name: "L63*8", Params: []float64{63, 63, 8}, Weight: 7.469, Area: 0.247},
		{Name: "L63*10", Params: []float64{63, 63, 10}, Weight: 9.151, Area: 0.246},
		{Name: "L70*4", Params: []float64{70, 70, 4}, Weight: 4.372, Area: 0.275},
		{Name: "L70*5", Params: []float64{70, 70, 5}, Weight: 5.397, Area: 0.275},
		{Name: "L70*6", Params: []float64{70, 70, 6}, Weight: 6.406, Area: 0.275},
		{Name: "L70*7", Params: []float64{70, 70, 7}, Weight: 7.398, Area: 0.275},
		{Name: "L70*8", Params: []float64{70, 70, 8}, Weight: 8.374, Area: 0.274},
		{Name: "L75*5", Params: []float64{75, 75, 5}, Weight: 5.819, Area: 0.295},
		{Name: "L75*6", Params: []float64{75, 75, 6}, Weight: 6.906, Area: 0.294},
		{Name: "L75*7", Params: []float64{75, 75, 7}, Weight: 7.976, Area: 0.294},
		{Name: "L75*8", Params: []float64{75, 75, 8}, Weight: 9.03, Area: 0.294},
		{Name: "L75*9", Params: []float64{75, 75, 9}, Weight: 10.068, Area: 0.294},
		{Name: "L75*10", Params: []float64{75, 75, 10}, Weight: 11.089, Area: 0.293},
		{Name: "L80*5", Params: []float64{80, 80, 5}, Weight: 6.211, Area: 0.315},
		{Name: "L80*6", Params: []float64{80, 80, 6}, Weight: 7.377, Area: 0.314},
		{Name: "L80*7", Params: []float64{80, 80, 7}, Weight: 8.526, Area: 0.314},
		{Name: "L80*8", Params: []float64{80, 80, 8}, Weight: 9.658, Area: 0.314},
		{Name: "L80*9", Params: []float64{80, 80, 9}, Weight: 10.774, Area: 0.314},
		{Name: "L80*10", Params: []float64{80, 80, 10}, Weight: 11.874, Area: 0.313},
		{Name: "L90*6", Params: []float64{90, 90, 6}, Weight: 8.351, Area: 0.354},
		{Name: "L90*7", Params: []float64{90, 90, 7}, Weight: 9.657, Area: 0.354},
		{Name: "L90*8", Params: []float64{90, 90, 8}, Weight: 10.946, Area: 0.353},
		{Name: "L90*9", Params: []float64{90, 90, 9}, Weight: 12.22, Area: 0.353},
		{Name: "L90*10", Params: []float64{90, 90, 10}, Weight: 13.476, Area: 0.353},
		{Name: "L90*12", Params: []float64{90, 90, 12}, Weight: 15.94, Area: 0.352},
		{Name: "L100*6", Params: []float64{100, 100, 6}, Weight: 9.367, Area: 0.393},
		{Name: "L100*7", Params: []float64{100, 100, 7}, Weight: 10.83, Area: 0.393},
		{Name: "L100*8", Params: []float64{100, 100, 8}, Weight: 12.277, Area: 0.393},
		{Name: "L100*9", Params: []float64{100, 100, 9}, Weight: 13.707, Area: 0.392},
		{Name: "L100*10", Params: []float64{100, 100, 10}, Weight: 15.121, Area: 0.392},
		{Name: "L100*12", Params: []float64{100, 100, 12}, Weight: 17.899, Area: 0.391},
		{Name: "L100*14", Params: []float64{100, 100, 14}, Weight: 20.611, Area: 0.391},
		{Name: "L100*16", Params: []float64{100, 100, 16}, Weight: 23.257, Area: 0.39},
		{Name: "L110*7", Params: []float64{110, 110, 7}, Weight: 11.929, Area: 0.433},
		{Name: "L110*8", Params: []float64{110, 110, 8}, Weight: 13.533, Area: 0.433},
		{Name: "L110*10", Params: []float64{110, 110, 10}, Weight: 16.691, Area: 0.432},
		{Name: "L110*12", Params: []float64{110, 110, 12}, Weight: 19.783, Area: 0.431},
		{Name: "L110*14", Params: []float64{110, 110, 14}, Weight: 22.809, Area: 0.431},
		{Name: "L125*8", Params: []float64{125, 125, 8}, Weight: 15.504, Area: 0.492},
		{Name: "L125*10", Params: []float64{125, 125, 10}, Weight: 19.133, Area: 0.491},
		{Name: "L125*12", Params: []float64{125, 125, 12}, Weight: 22.696, Area: 0.491},
		{Name: "L125*14", Params: []float64{125, 125, 14}, Weight: 26.194, Area: 0.49},
		{Name: "L125*16", Params: []float64{125, 125, 16}, Weight: 29.625, Area: 0.489},
		{Name: "L140*10", Params: []float64{140, 140, 10}, Weight: 21.488, Area: 0.551},
		{Name: "L140*12", Params: []float64{140, 140, 12}, Weight: 25.522, Area: 0.551},
		{Name: "L140*14", Params: []float64{140, 140, 14}, Weight: 29.491, Area: 0.55},
		{Name: "L140*16", Params: []float64{140, 140, 16}, Weight: 33.393, Area: 0.549},
		{Name: "L160*10", Params: []float64{160, 160, 10}, Weight: 24.73, Area: 0.63},
		{Name: "L160*12", Params: []float64{160, 160, 12}, Weight: 29.392, Area: 0.63},
		{Name: "L160*14", Params: []float64{160, 160, 14}, Weight: 33.988, Area: 0.629},
		{Name: "L160*16", Params: []float64{160, 160, 16}, Weight: 38.518, Area: 0.629},
		{Name: "L180*12", Params: []float64{180, 180, 12}, Weight: 33.16, Area: 0.71},
		{Name: "L180*14", Params: []float64{180, 180, 14}, Weight: 38.384, Area: 0.709},
		{Name: "L180*16", Params: []float64{180, 180, 16}, Weight: 43.542, Area: 0.709},
		{Name: "L180*18", Params: []float64{180, 180, 18}, Weight: 48.635, Area: 0.708},
		{Name: "L200*14", Params: []float64{200, 200, 14}, Weight: 42.895, Area: 0.788},
		{Name: "L200*16", Params: []float64{200, 200, 16}, Weight: 48.681, Area: 0.788},
		{Name: "L200*18", Params: []float64{200, 200, 18}, Weight: 54.402, Area: 0.787},
		{Name: "L200*20", Params: []float64{200, 200, 20}, Weight: 60.057, Area: 0.787},
		{Name: "L200*24", Params: []float64{200, 200, 24}, Weight: 71.169, Area: 0.785},
		{Name: "L25*16*3", Params: []float64{25, 16, 3}, Weight: 0.912, Area: 0.08},
		{Name: "L25*16*4", Params: []float64{25, 16, 4}, Weight: 1.176, Area: 0.079},
		{Name: "L32*20*3", Params: []float64{32, 20, 3}, Weight: 1.171, Area: 0.102},
		{Name: "L32*20*4", Params: []float64{32, 20, 4}, Weight: 1.522, Area: 0.101},
		{Name: "L40*25*3", Params: []float64{40, 25, 3}, Weight: 1.484, Area: 0.127},
		{Name: "L40*25*4", Params: []float64{40, 25, 4}, Weight: 1.936, Area: 0.127},
		{Name: "L45*28*3", Params: []float64{45, 28, 3}, Weight: 1.687, Area: 0.143},
		{Name: "L45*28*4", Params: []float64{45, 28, 4}, Weight: 2.203, Area: 0.143},
		{Name: "L50*32*3", Params: []float64{50, 32, 3}, Weight: 1.908, Area: 0.161},
		{Name: "L50*32*4", Params: []float64{50, 32, 4}, Weight: 2.494, Area: 0.16},
		{Name: "L56*36*3", Params: []float64{56, 36, 3}, Weight: 2.153, Area: 0.181},
		{Name: "L56*36*4", Params: []float64{56, 36, 4}, Weight: 2.818, Area: 0.18},
		{Name: "L56*36*5", Params: []float64{56, 36, 5}, Weight: 3.466, Area: 0.18},
		{Name: "L63*40*4", Params: []float64{63, 40, 4}, Weight: 3.185, Area: 0.202},
		{Name: "L63*40*5", Params: []float64{63, 40, 5}, Weight: 3.92, Area: 0.202},
		{Name: "L63*40*6", Params: []float64{63, 40, 6}, Weight: 4.638, Area: 0.201},
		{Name: "L63*40*7", Params: []float64{63, 40, 7}, Weight: 5.34, Area: 0.201},
		{Name: "L70*45*4", Params: []float64{70, 45, 4}, Weight: 3.574, Area: 0.226},
		{Name: "L70*45*5", Params: []float64{70, 45, 5}, Weight: 4.403, Area: 0.225},
		{Name: "L70*45*6", Params: []float64{70, 45, 6}, Weight: 5.215, Area: 0.225},
		{Name: "L70*45*7", Params: []float64{70, 45, 7}, Weight: 6.011, Area: 0.225},
		{Name: "L75*50*5", Params: []float64{75, 50, 5}, Weight: 4.809, Area: 0.245},
		{Name: "L75*50*6", Params: []float64{75, 50, 6}, Weight: 5.699, Area: 0.245},
		{Name: "L75*50*8", Params: []float64{75, 50, 8}, Weight: 7.432, Area: 0.244},
		{Name: "L75*50*10", Params: []float64{75, 50, 10}, Weight: 9.098, Area: 0.244},
		{Name: "L80*50*5", Params: []float64{80, 50, 5}, Weight: 5.005, Area: 0.255},
		{Name: "L80*50*6", Params: []float64{80, 50, 6}, Weight: 5.935, Area: 0.255},
		{Name: "L80*50*7", Params: []float64{80, 50, 7}, Weight: 6.848, Area: 0.255},
		{Name: "L80*50*8", Params: []float64{80, 50, 8}, Weight: 7.746, Area: 0.254},
		{Name: "L90*56*5", Params: []float64{90, 56, 5}, Weight: 5.662, Area: 0.287},
		{Name: "L90*56*6", Params: []float64{90, 56, 6}, Weight: 6.717, Area: 0.286},
		{Name: "L90*56*7", Params: []float64{90, 56, 7}, Weight: 7.756, Area: 0.286},
		{Name: "L90*56*8", Params: []float64{90, 56, 8}, Weight: 8.779, Area: 0.286},
		{Name: "L100*63*6", Params: []float64{100, 63, 6}, Weight: 7.55, Area: 0.32},
		{Name: "L100*63*7", Params: []float64{100, 63, 7}, Weight: 8.723, Area: 0.32},
		{Name: "L100*63*8", Params: []float64{100, 63, 8}, Weight: 9.879, Area: 0.319},
		{Name: "L100*63*10", Params: []float64{100, 63, 10}, Weight: 12.142, Area: 0.319},
		{Name: "L100*80*6", Params: []float64{100, 80, 6}, Weight: 8.351, Area: 0.354},
		{Name: "L100*80*7", Params: []float64{100, 80, 7}, Weight: 9.657, Area: 0.354},
		{Name: "L100*80*8", Params: []float64{100, 80, 8}, Weight: 10.946, Area: 0.353},
		{Name: "L100*80*10", Params: []float64{100, 80, 10}, Weight: 13.476, Area: 0.353},
		{Name: "L110*70*6", Params: []float64{110, 70, 6}, Weight: 8.351, Area: 0.354},
		{Name: "L110*70*7", Params: []float64{110, 70, 7}, Weight: 9.657, Area: 0.354},
		{Name: "L110*70*8", Params: []float64{110, 70, 8}, Weight: 10.946, Area: 0.353},
		{Name: "L110*70*10", Params: []float64{110, 70, 10}, Weight: 13.476, Area: 0.353},
		{Name: "L125*80*7", Params: []float64{125, 80, 7}, Weight: 11.066, Area: 0.403},
		{Name: "L125*80*8", Params: []float64{125, 80, 8}, Weight: 12.552, Area: 0.403},
		{Name: "L125*80*10", Params: []float64{125, 80, 10}, Weight: 15.474, Area: 0.402},
		{Name: "L125*80*12", Params: []float64{125, 80, 12}, Weight: 18.331, Area: 0.402},
		{Name: "L140*90*8", Params: []float64{140, 90, 8}, Weight: 14.161, Area: 0.453},
		{Name: "L140*90*10", Params: []float64{140, 90, 10}, Weight: 17.476, Area: 0.452},
		{Name: "L140*90*12", Params: []float64{140, 90, 12}, Weight: 20.725, Area: 0.451},
		{Name: "L140*90*14", Params: []float64{140, 90, 14}, Weight: 23.908, Area: 0.451},
		{Name: "L160*100*10", Params: []float64{160, 100, 10}, Weight: 19.873, Area: 0.512},
		{Name: "L160*100*12", Params: []float64{160, 100, 12}, Weight: 23.593, Area: 0.511},
		{Name: "L160*100*14", Params: []float64{160, 100, 14}, Weight: 27.247, Area: 0.51},
		{Name: "L160*100*16", Params: []float64{160, 100, 16}, Weight: 30.836, Area: 0.51},
		{Name: "L180*110*10", Params: []float64{180, 110, 10}, Weight: 22.273, Area: 0.571},
		{Name: "L180*110*12", Params: []float64{180, 110, 12}, Weight: 26.464, Area: 0.571},
		{Name: "L180*110*14", Params: []float64{180, 110, 14}, Weight: 30.59, Area: 0.57},
		{Name: "L180*110*16", Params: []float64{180, 110, 16}, Weight: 34.649, Area: 0.569},
		{Name: "L200*125*12", Params: []float64{200, 125, 12}, Weight: 29.761, Area: 0.641},
		{Name: "L200*125*14", Params: []float64{200, 125, 14}, Weight: 34.436, Area: 0.64},
		{Name: "L200*125*16", Params: []float64{200, 125, 16}, Weight: 39.045, Area: 0.639},
		{Name: "L200*125*18", Params: []float64{200, 125, 18}, Weight: 43.588, Area: 0.639},
	},
}
