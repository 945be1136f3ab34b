package delaunay

// Regression scenarios that once hung or crashed constrained triangulation
// in the wild: big nearly-degenerate boundary loops and meshes with
// repeated coordinates. They are kept as literal data so the exact
// problematic coordinates are pinned down, independent of any generator.

type issueCase struct {
	name        string
	points      []Point
	constraints []Edge
	holes       []Point
}

// 97 boundary points hugging a square outline with sub-micron jitter, so
// nearly every legalization decision sits close to the collinear knife edge.
// The closed loop of 97 constraint pairs is followed by one repeated pair.
var issue30 = issueCase{
	name: "Issue30",
	points: []Point{
		{0, -7.81631292e-09}, {0.989690722, 4.21607113e-08}, {1.97938144, 9.39926183e-08},
		{2.96907216, -3.07271508e-08}, {3.95876289, 5.79982609e-08}, {4.94845361, 4.8544605e-08},
		{5.93814433, 2.05603475e-08}, {6.92783505, -2.83156308e-08}, {7.91752577, -9.77622421e-08},
		{8.90721649, 7.69339799e-09}, {9.89690722, -9.86970015e-08}, {10.8865979, -9.85143988e-08},
		{11.8762887, 5.14648929e-08}, {12.8659794, 8.54709774e-08}, {13.8556701, 6.80197956e-08},
		{14.8453608, -6.83805463e-08}, {15.8350515, -1.99109458e-08}, {16.8247423, -8.3492533e-08},
		{17.814433, -9.44338215e-08}, {18.8041237, -3.08847641e-08}, {19.7938144, -7.04095644e-09},
		{20.7835052, 8.64737937e-08}, {21.7731959, 9.52979874e-08}, {22.7628866, -6.10588574e-08},
		{23.7525773, -3.43939428e-08}, {24.0000001, 0.742268041}, {24, 1.73195876},
		{24, 2.72164948}, {24, 3.71134021}, {24.0000001, 4.70103093},
		{23.9999999, 5.69072165}, {24, 6.68041237}, {24, 7.67010309},
		{24.0000001, 8.65979381}, {24.0000001, 9.64948454}, {24, 10.6391753},
		{23.9999999, 11.628866}, {23.9999999, 12.6185567}, {24, 13.6082474},
		{24.0000001, 14.5979381}, {24, 15.5876289}, {24, 16.5773196},
		{24, 17.5670103}, {24, 18.556701}, {23.9999999, 19.5463918},
		{24, 20.5360825}, {24, 21.5257732}, {24.0000001, 22.5154639},
		{24.0000001, 23.5051546}, {23.5051546, 24}, {22.5154639, 23.9999999},
		{21.5257732, 24.0000001}, {20.5360825, 24.0000001}, {19.5463918, 24},
		{18.556701, 24}, {17.5670103, 24.0000001}, {16.5773196, 24},
		{15.5876289, 24}, {14.5979381, 24}, {13.6082474, 24},
		{12.6185567, 24}, {11.628866, 24.0000001}, {10.6391753, 24},
		{9.64948454, 24}, {8.65979381, 23.9999999}, {7.67010309, 23.9999999},
		{6.68041237, 24}, {5.69072165, 24}, {4.70103093, 24},
		{3.71134021, 24}, {2.72164948, 24}, {1.73195876, 24},
		{0.742268041, 24}, {2.35441621e-08, 23.7525773}, {-5.94608647e-08, 22.7628866},
		{-2.87624118e-08, 21.7731959}, {-3.89436669e-08, 20.7835052}, {2.53555755e-08, 19.7938144},
		{-3.57944092e-09, 18.8041237}, {-4.42486587e-08, 17.814433}, {-9.13341989e-08, 16.8247423},
		{-5.7542636e-09, 15.8350515}, {3.58429283e-08, 14.8453608}, {-3.78552574e-08, 13.8556701},
		{7.60923002e-08, 12.8659794}, {3.30777622e-08, 11.8762887}, {9.34600345e-08, 10.8865979},
		{-1.05598642e-08, 9.89690722}, {4.92331969e-08, 8.90721649}, {2.1648242e-08, 7.91752577},
		{-5.75054866e-08, 6.92783505}, {-2.70804294e-08, 5.93814433}, {9.26057731e-08, 4.94845361},
		{1.14504268e-08, 3.95876289}, {9.86586271e-08, 2.96907216}, {-6.46386781e-08, 1.97938144},
		{7.02421946e-10, 0.989690722},
	},
	constraints: []Edge{
		{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 5}, {5, 6}, {6, 7}, {7, 8},
		{8, 9}, {9, 10}, {10, 11}, {11, 12}, {12, 13}, {13, 14}, {14, 15}, {15, 16},
		{16, 17}, {17, 18}, {18, 19}, {19, 20}, {20, 21}, {21, 22}, {22, 23}, {23, 24},
		{24, 25}, {25, 26}, {26, 27}, {27, 28}, {28, 29}, {29, 30}, {30, 31}, {31, 32},
		{32, 33}, {33, 34}, {34, 35}, {35, 36}, {36, 37}, {37, 38}, {38, 39}, {39, 40},
		{40, 41}, {41, 42}, {42, 43}, {43, 44}, {44, 45}, {45, 46}, {46, 47}, {47, 48},
		{48, 49}, {49, 50}, {50, 51}, {51, 52}, {52, 53}, {53, 54}, {54, 55}, {55, 56},
		{56, 57}, {57, 58}, {58, 59}, {59, 60}, {60, 61}, {61, 62}, {62, 63}, {63, 64},
		{64, 65}, {65, 66}, {66, 67}, {67, 68}, {68, 69}, {69, 70}, {70, 71}, {71, 72},
		{72, 73}, {73, 74}, {74, 75}, {75, 76}, {76, 77}, {77, 78}, {78, 79}, {79, 80},
		{80, 81}, {81, 82}, {82, 83}, {83, 84}, {84, 85}, {85, 86}, {86, 87}, {87, 88},
		{88, 89}, {89, 90}, {90, 91}, {91, 92}, {92, 93}, {93, 94}, {94, 95}, {95, 96},
		{96, 0}, {0, 1},
	},
}

// A 159-point wavy ring; the closed loop exercises long constraint chains
// where every edge should already be present after plain insertion.
var issue31 = issueCase{
	name: "Issue31",
	points: []Point{
		{10, 0}, {10.5379747, 0.41664487}, {11.0163914, 0.872484397},
		{11.39512, 1.35726347}, {11.6412891, 1.85559009}, {11.732077, 2.34872012},
		{11.6565957, 2.81677688}, {11.4167053, 3.2411622}, {11.0266917, 3.60689196},
		{10.5118494, 3.90459396}, {9.90610949, 4.13193821}, {9.24894235, 4.29432675},
		{8.58182753, 4.40474583}, {7.94462105, 4.48277034}, {7.3721543, 4.55279993},
		{6.89137259, 4.64168871}, {6.51926543, 4.77599812}, {6.26176156, 4.97914689},
		{6.11366783, 5.26875029}, {6.05963026, 5.6544285}, {6.07599913, 6.13632375},
		{6.13339607, 6.7045003}, {6.19971844, 7.33931702}, {6.24328034, 8.01276762},
		{6.23578361, 8.6906873}, {6.15483617, 9.33563686}, {5.9857869, 9.9102044},
		{5.72271906, 10.3804184}, {5.36853243, 10.7189482}, {4.93413675, 10.907783},
		{4.43686847, 10.9401228}, {3.89831869, 10.8212876}, {3.34181579, 10.5685391},
		{2.78983649, 10.2098125}, {2.26162056, 9.78145798}, {1.77123723, 9.32518573},
		{1.3262999, 8.88448645}, {0.92745338, 8.50084947}, {0.568674278, 8.21012374},
		{0.238337508, 8.03935487}, {-0.0790797182, 8.00438982}, {-0.400852963, 8.10847006},
		{-0.743667954, 8.34194357}, {-1.12134445, 8.68312225}, {-1.54288376, 9.1002053},
		{-2.0110627, 9.55409096}, {-2.52173898, 10.0018173}, {-3.06395692, 10.4003159},
		{-3.62085703, 10.7101347}, {-4.17130579, 10.8987934}, {-4.69208349, 10.9434697},
		{-5.16040469, 10.832781}, {-5.55650632, 10.5675145}, {-5.8660254, 10.160254},
		{-6.08190423, 9.63396157}, {-6.20560437, 9.01966247}, {-6.24747755, 8.3534694},
		{-6.22622484, 7.6732351}, {-6.16746809, 7.01515497}, {-6.10154856, 6.41063809},
		{-6.06074956, 5.8837333}, {-6.07620295, 5.44933736}, {-6.17477776, 5.11233178},
		{-6.37625844, 4.867702}, {-6.69109904, 4.70159569}, {-7.11898967, 4.59318636},
		{-7.64839766, 4.51713266}, {-8.25715417, 4.4463702}, {-8.91405756, 4.35494623},
		{-9.58136604, 4.22061043}, {-10.2179645, 4.02690687}, {-10.7829224, 3.76456913},
		{-11.2391174, 3.43209634}, {-11.5565885, 3.03547535}, {-11.7153043, 2.5871034},
		{-11.7070809, 2.10404839}, {-11.5364633, 1.60585073}, {-11.2204779, 1.11211635},
		{-10.7872682, 0.640168849}, {-10.2737314, 0.20301937}, {-9.72236476, -0.192123805},
		{-9.17760644, -0.544643709}, {-8.68200242, -0.860515649}, {-8.2725473, -1.15152068},
		{-7.97753065, -1.43375711}, {-7.814173, -1.72561233}, {-7.78726158, -2.04541683},
		{-7.88890232, -2.40903907}, {-8.09940076, -2.82768927}, {-8.38917966, -3.3061815},
		{-8.7215463, -3.84185816}, {-9.05604511, -4.42431398}, {-9.35208065, -5.03597387},
		{-9.57247458, -5.65348972}, {-9.68663163, -6.24983409}, {-9.67303135, -6.79689275},
		{-9.52083039, -7.26830092}, {-9.23044809, -7.64223668}, {-8.81310649, -7.90388189},
		{-8.28939558, -8.04728728}, {-7.68702624, -8.07643219}, {-7.03800714, -8.00534516},
		{-6.37553203, -7.85724215}, {-5.73088483, -7.66273599}, {-5.13066071, -7.45726364},
		{-4.59456333, -7.2779585}, {-4.1339746, -7.16025404}, {-3.75141231, -7.1345377},
		{-3.44089936, -7.22317559}, {-3.18917606, -7.43819914}, {-2.97760361, -7.77988676},
		{-2.78454005, -8.23639234}, {-2.58792656, -8.78447527}, {-2.36780617, -9.39128318},
		{-2.10850968, -10.0170389}, {-1.80028362, -10.6183959}, {-1.44019796, -11.152162},
		{-1.03224995, -11.5790533}, {-0.586667553, -11.8671351}, {-0.118501511, -11.9946342},
		{0.354329049, -11.9518619}, {0.813314686, -11.7420718}, {1.24170018, -11.3811719},
		{1.62663138, -10.8963173}, {1.96086112, -10.323515}, {2.24381763, -9.7044607},
		{2.48190683, -9.08289911}, {2.68800147, -8.5008422}, {2.88015765, -7.9949888},
		{3.07968317, -7.59366934}, {3.308754, -7.31458659}, {3.58782711, -7.16354672},
		{3.93312499, -7.13428048}, {4.35446522, -7.20935127}, {4.85367892, -7.36204548},
		{5.42380598, -7.55905026}, {6.04917867, -7.76365313}, {6.70641678, -7.9391539},
		{7.36626396, -8.05216529}, {7.99610759, -8.07549571}, {8.56295124, -7.99035477},
		{9.03655702, -7.78769207}, {9.39245136, -7.46856848}, {9.61449336, -7.04355464},
		{9.69674112, -6.5312466}, {9.64441397, -5.95607273}, {9.47383241, -5.3456313},
		{9.21131429, -4.72783892}, {8.89110595, -4.12818165}, {8.55252175, -3.56734311},
		{8.23654384, -3.05943875}, {7.98219013, -2.61101863}, {7.82298504, -2.22091775},
		{7.7838626, -1.88094404}, {7.87879534, -1.57730683}, {8.10937719, -1.29261286},
		{8.46450196, -1.00819995}, {8.92117769, -0.706546094}, {9.44641152, -0.373487224},
	},
	constraints: []Edge{
		{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 5}, {5, 6}, {6, 7}, {7, 8},
		{8, 9}, {9, 10}, {10, 11}, {11, 12}, {12, 13}, {13, 14}, {14, 15}, {15, 16},
		{16, 17}, {17, 18}, {18, 19}, {19, 20}, {20, 21}, {21, 22}, {22, 23}, {23, 24},
		{24, 25}, {25, 26}, {26, 27}, {27, 28}, {28, 29}, {29, 30}, {30, 31}, {31, 32},
		{32, 33}, {33, 34}, {34, 35}, {35, 36}, {36, 37}, {37, 38}, {38, 39}, {39, 40},
		{40, 41}, {41, 42}, {42, 43}, {43, 44}, {44, 45}, {45, 46}, {46, 47}, {47, 48},
		{48, 49}, {49, 50}, {50, 51}, {51, 52}, {52, 53}, {53, 54}, {54, 55}, {55, 56},
		{56, 57}, {57, 58}, {58, 59}, {59, 60}, {60, 61}, {61, 62}, {62, 63}, {63, 64},
		{64, 65}, {65, 66}, {66, 67}, {67, 68}, {68, 69}, {69, 70}, {70, 71}, {71, 72},
		{72, 73}, {73, 74}, {74, 75}, {75, 76}, {76, 77}, {77, 78}, {78, 79}, {79, 80},
		{80, 81}, {81, 82}, {82, 83}, {83, 84}, {84, 85}, {85, 86}, {86, 87}, {87, 88},
		{88, 89}, {89, 90}, {90, 91}, {91, 92}, {92, 93}, {93, 94}, {94, 95}, {95, 96},
		{96, 97}, {97, 98}, {98, 99}, {99, 100}, {100, 101}, {101, 102}, {102, 103}, {103, 104},
		{104, 105}, {105, 106}, {106, 107}, {107, 108}, {108, 109}, {109, 110}, {110, 111}, {111, 112},
		{112, 113}, {113, 114}, {114, 115}, {115, 116}, {116, 117}, {117, 118}, {118, 119}, {119, 120},
		{120, 121}, {121, 122}, {122, 123}, {123, 124}, {124, 125}, {125, 126}, {126, 127}, {127, 128},
		{128, 129}, {129, 130}, {130, 131}, {131, 132}, {132, 133}, {133, 134}, {134, 135}, {135, 136},
		{136, 137}, {137, 138}, {138, 139}, {139, 140}, {140, 141}, {141, 142}, {142, 143}, {143, 144},
		{144, 145}, {145, 146}, {146, 147}, {147, 148}, {148, 149}, {149, 150}, {150, 151}, {151, 152},
		{152, 153}, {153, 154}, {154, 155}, {155, 156}, {156, 157}, {157, 158}, {158, 0},
	},
}

// A rectangle with four rectangular cutouts plus six free interior points,
// two of which repeat an earlier coordinate (one exactly, one within
// tolerance). The four markers sit at the cutout centers.
var issue111 = issueCase{
	name: "Issue111",
	points: []Point{
		{0, 0}, {5, 0}, {10, 0},
		{15, 0}, {20, 0}, {25, 0},
		{30, 0}, {30, 5}, {30, 10},
		{30, 15}, {30, 20}, {25, 20},
		{20, 20}, {15, 20}, {10, 20},
		{5, 20}, {0, 20}, {0, 10},
		{5, 5}, {5, 8}, {9, 8},
		{9, 5}, {13, 5}, {13, 8},
		{17, 8}, {17, 5}, {21, 5},
		{21, 8}, {25, 8}, {25, 5},
		{13, 12}, {13, 15}, {17, 15},
		{17, 12}, {10, 17}, {20, 17},
		{27, 10}, {10, 17}, {20.0000000001, 17},
		{2.5, 2.5},
	},
	constraints: []Edge{
		{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 5}, {5, 6}, {6, 7}, {7, 8},
		{8, 9}, {9, 10}, {10, 11}, {11, 12}, {12, 13}, {13, 14}, {14, 15}, {15, 16},
		{16, 17}, {17, 0}, {18, 19}, {19, 20}, {20, 21}, {21, 18}, {22, 23}, {23, 24},
		{24, 25}, {25, 22}, {26, 27}, {27, 28}, {28, 29}, {29, 26}, {30, 31}, {31, 32},
		{32, 33}, {33, 30},
	},
	holes: []Point{
		{7, 6.5}, {15, 6.5}, {23, 6.5},
		{15, 13.5},
	},
}

var issueCases = []issueCase{issue30, issue31, issue111}
