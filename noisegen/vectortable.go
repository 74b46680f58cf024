// SPDX-License-Identifier: MIT
// Package: lvnoise/noisegen
//
// vectortable.go — unit-length gradient vectors used by GradientNoise3D.

package noisegen

// randomVectors holds 256 pseudo-random directions on the unit sphere.
// GradientNoise3D picks one by an 8-bit hash of the lattice point.
var randomVectors = [256][3]float64{
	{-0.763874, -0.596439, -0.246489},
	{0.396055, 0.904518, -0.158073},
	{-0.499004, -0.8665, -0.0131631},
	{0.468724, -0.824756, 0.316346},
	{0.829598, 0.43195, 0.353816},
	{-0.454473, 0.629497, -0.630228},
	{-0.162349, -0.869962, -0.465628},
	{0.932805, 0.253451, 0.256198},
	{-0.345419, 0.927299, -0.144227},
	{-0.715026, -0.293698, -0.634413},
	{-0.245997, 0.717467, -0.651711},
	{-0.967409, -0.250435, -0.037451},
	{0.901729, 0.397108, -0.170852},
	{0.892657, -0.0720622, -0.444938},
	{0.0260084, -0.0361701, 0.999007},
	{0.949107, -0.19486, 0.247439},
	{0.471803, -0.807064, -0.355036},
	{0.879737, 0.141845, 0.453809},
	{0.570747, 0.696415, 0.435033},
	{-0.141751, -0.988233, -0.0574584},
	{-0.58219, -0.0303005, 0.812488},
	{-0.60922, 0.239482, -0.755975},
	{0.299394, -0.197066, -0.933557},
	{-0.851615, -0.220702, -0.47544},
	{0.848886, 0.341829, -0.403169},
	{-0.156129, -0.687241, 0.709453},
	{-0.665651, 0.626724, 0.405124},
	{0.595914, -0.674582, 0.43569},
	{0.171025, -0.509292, 0.843428},
	{0.78605, 0.536414, -0.307222},
	{0.18905, -0.791613, 0.581042},
	{-0.294916, 0.844994, 0.446105},
	{0.342031, -0.58736, -0.7335},
	{0.57155, 0.7869, 0.232635},
	{0.885026, -0.408223, 0.223791},
	{-0.789518, 0.571645, 0.223347},
	{0.774571, 0.31566, 0.548087},
	{-0.79695, -0.0433603, -0.602487},
	{-0.142425, -0.473249, -0.869339},
	{-0.0698838, 0.170442, 0.982886},
	{0.687815, -0.484748, 0.540306},
	{0.543703, -0.534446, -0.647112},
	{0.97186, 0.184391, -0.146588},
	{0.707084, 0.485713, -0.513921},
	{0.942302, 0.331945, 0.043348},
	{0.499084, 0.599922, 0.625307},
	{-0.289203, 0.211107, 0.9337},
	{0.412433, -0.71667, -0.56239},
	{0.87721, -0.082816, 0.47291},
	{-0.420685, -0.214278, 0.881538},
	{0.752558, -0.0391579, 0.657361},
	{0.0765725, -0.996789, 0.0234082},
	{-0.544312, -0.309435, -0.779727},
	{-0.455358, -0.415572, 0.787368},
	{-0.874586, 0.483746, 0.0330131},
	{0.245172, -0.0838623, 0.965846},
	{0.382293, -0.432813, 0.81641},
	{-0.287735, -0.905514, 0.311853},
	{-0.667704, 0.704955, -0.239186},
	{0.717885, -0.464002, -0.518983},
	{0.976342, -0.214895, 0.0240053},
	{-0.0733096, -0.921136, 0.382276},
	{-0.986284, 0.151224, -0.0661379},
	{-0.899319, -0.429671, 0.0812908},
	{0.652102, -0.724625, 0.222893},
	{0.203761, 0.458023, -0.865272},
	{-0.030396, 0.698724, -0.714745},
	{-0.460232, 0.839138, 0.289887},
	{-0.0898602, 0.837894, 0.538386},
	{-0.731595, 0.0793784, 0.677102},
	{-0.447236, -0.788397, 0.422386},
	{0.186481, 0.645855, -0.740335},
	{-0.259006, 0.935463, 0.240467},
	{0.445839, 0.819655, -0.359712},
	{0.349962, 0.755022, -0.554499},
	{-0.997078, -0.0359577, 0.0673977},
	{-0.431163, -0.147516, -0.890133},
	{0.299648, -0.63914, 0.708316},
	{0.397043, 0.566526, -0.722084},
	{-0.502489, 0.438308, -0.745246},
	{0.0687235, 0.354097, 0.93268},
	{-0.0476651, -0.462597, 0.885286},
	{-0.221934, 0.900739, -0.373383},
	{-0.956107, -0.225676, 0.186893},
	{-0.187627, 0.391487, -0.900852},
	{-0.224209, -0.315405, 0.92209},
	{-0.730807, -0.537068, 0.421283},
	{-0.0353135, -0.816748, 0.575913},
	{-0.941391, 0.176991, -0.287153},
	{-0.154174, 0.390458, 0.90762},
	{-0.283847, 0.533842, 0.796519},
	{-0.482737, -0.850448, 0.209052},
	{-0.649175, 0.477748, 0.591886},
	{0.885373, -0.405387, -0.227543},
	{-0.147261, 0.181623, -0.972279},
	{0.0959236, -0.115847, -0.988624},
	{-0.89724, -0.191348, 0.397928},
	{0.903553, -0.428461, -0.00350461},
	{0.849072, -0.295807, -0.437693},
	{0.65551, 0.741754, -0.141804},
	{0.61598, -0.178669, 0.767232},
	{0.0112967, 0.932256, -0.361623},
	{-0.793031, 0.258012, 0.551845},
	{0.421933, 0.454311, 0.784585},
	{-0.319993, 0.0401618, -0.946568},
	{-0.81571, 0.551307, -0.175151},
	{-0.377644, 0.00322313, 0.925945},
	{0.129759, -0.666581, -0.734052},
	{0.601901, -0.654237, -0.457919},
	{-0.927463, -0.0343576, -0.372334},
	{-0.438663, -0.868301, -0.231578},
	{-0.648845, -0.749138, -0.133387},
	{0.507393, -0.588294, 0.629653},
	{0.726958, 0.623665, 0.287358},
	{0.411159, 0.367614, -0.834151},
	{0.806333, 0.585117, -0.0864016},
	{0.263935, -0.880876, 0.392932},
	{0.421546, -0.201336, 0.884174},
	{-0.683198, -0.569557, -0.456996},
	{-0.117116, -0.0406654, -0.992285},
	{-0.643679, -0.109196, -0.757465},
	{-0.561559, -0.62989, 0.536554},
	{0.0628422, 0.104677, -0.992519},
	{0.480759, -0.2867, -0.828658},
	{-0.228559, -0.228965, -0.946222},
	{-0.10194, -0.65706, -0.746914},
	{0.0689193, -0.678236, 0.731605},
	{0.401019, -0.754026, 0.52022},
	{-0.742141, 0.547083, -0.387203},
	{-0.00210603, -0.796417, -0.604745},
	{0.296725, -0.409909, -0.862513},
	{-0.260932, -0.798201, 0.542945},
	{-0.641628, 0.742379, 0.192838},
	{-0.186009, -0.101514, 0.97729},
	{0.106711, -0.962067, 0.251079},
	{-0.743499, 0.30988, -0.592607},
	{-0.795853, -0.605066, -0.0226607},
	{-0.828661, -0.419471, -0.370628},
	{0.0847218, -0.489815, -0.8677},
	{-0.381405, 0.788019, -0.483276},
	{0.282042, -0.953394, 0.107205},
	{0.530774, 0.847413, 0.0130696},
	{0.0515397, 0.922524, 0.382484},
	{-0.631467, -0.709046, 0.313852},
	{0.688248, 0.517273, 0.508668},
	{0.639101, -0.329866, -0.694794},
	{-0.581777, -0.0713562, 0.810212},
	{0.274595, -0.938812, -0.207915},
	{0.975426, -0.0811546, -0.204843},
	{0.186455, -0.879116, -0.438623},
	{0.558883, 0.771408, 0.304243},
	{-0.620022, 0.582403, 0.525718},
	{-0.389436, -0.8614, 0.326081},
	{-0.209597, 0.91288, -0.350312},
	{0.0398148, 0.0599604, 0.997406},
	{-0.591611, 0.756715, -0.27817},
	{-0.0590624, 0.818082, -0.572094},
	{-0.376889, -0.870826, -0.315572},
	{0.367615, 0.916786, 0.156085},
	{-0.843628, 0.531281, -0.0774566},
	{0.188454, -0.861252, 0.471942},
	{0.41655, 0.820283, 0.391946},
	{-0.660635, -0.628117, -0.411134},
	{0.0649925, -0.0990929, -0.992955},
	{0.519713, -0.694252, -0.497909},
	{0.587489, 0.808727, -0.0285844},
	{0.838513, 0.353457, 0.414698},
	{-0.166048, -0.986061, -0.0106094},
	{-0.652427, -0.657308, 0.377208},
	{0.601673, 0.541213, -0.587433},
	{0.104697, -0.844326, -0.525531},
	{0.394513, -0.913937, -0.0952846},
	{-0.808133, -0.573085, 0.136075},
	{-0.598282, -0.0837032, -0.796902},
	{0.0787512, 0.855493, -0.511791},
	{0.474584, 0.61685, 0.627906},
	{-0.29068, 0.710799, -0.640523},
	{0.605974, -0.792558, -0.068167},
	{-0.513498, -0.0966035, -0.852629},
	{0.028374, -0.909158, 0.415483},
	{-0.0813068, -0.95454, -0.28678},
	{0.597533, -0.434422, 0.673967},
	{-0.605929, 0.70943, -0.359944},
	{-0.0834027, -0.965919, -0.245038},
	{0.091106, 0.937224, 0.336616},
	{0.0212101, 0.994624, 0.101245},
	{-0.398238, -0.905732, 0.145107},
	{0.398432, 0.0497024, 0.915829},
	{0.0305714, -0.96658, -0.254537},
	{0.850084, -0.50604, 0.145878},
	{-0.568124, 0.624138, -0.536364},
	{0.491657, 0.810451, 0.318464},
	{0.0211508, 0.999689, 0.0132497},
	{-0.591391, -0.780878, 0.201213},
	{-0.571698, -0.702897, 0.423203},
	{0.659434, -0.555816, -0.506177},
	{-0.537243, 0.72044, 0.438562},
	{-0.401565, 0.896652, -0.186447},
	{0.82966, -0.51741, -0.209645},
	{-0.2862, 0.946512, 0.14901},
	{-0.0817561, 0.960541, 0.26585},
	{0.568848, 0.795946, -0.207047},
	{-0.637689, 0.00357389, -0.77028},
	{0.0396318, 0.956484, -0.289077},
	{-0.00558613, -0.0236849, 0.999704},
	{0.0707008, 0.994318, -0.0795843},
	{-0.0836292, 0.898645, -0.430632},
	{0.316017, -0.764436, 0.5619},
	{0.786584, -0.546802, 0.286868},
	{-0.130558, -0.0611298, -0.98955},
	{0.524535, -0.627268, 0.575671},
	{0.0458949, 0.820019, 0.570493},
	{-0.742673, -0.647436, -0.171065},
	{-0.151305, -0.0733853, 0.985759},
	{0.813659, -0.426787, -0.394773},
	{0.264208, -0.889854, 0.371931},
	{-0.00807406, -0.99947, -0.0315604},
	{0.16351, -0.933442, -0.319298},
	{-0.0396108, -0.855373, -0.516465},
	{-0.657771, 0.726508, 0.198808},
	{0.0311694, 0.912716, -0.407401},
	{-0.780516, 0.00596426, -0.625114},
	{-0.497289, -0.764502, 0.41017},
	{-0.171113, -0.859669, 0.481326},
	{0.539024, 0.799064, 0.266437},
	{-0.0357115, 0.811934, -0.582655},
	{0.0657547, 0.0656541, -0.995675},
	{-0.522783, -0.614443, -0.590895},
	{0.0806219, -0.981969, 0.170965},
	{-0.0657233, -0.931922, 0.356663},
	{-0.722749, 0.66376, 0.192502},
	{-0.538049, -0.794419, 0.281732},
	{0.657009, -0.646589, -0.387636},
	{0.553418, 0.663818, 0.503065},
	{-0.151628, 0.935453, -0.319279},
	{0.00939961, 0.99975, 0.0201452},
	{0.396057, -0.909501, 0.12628},
	{0.572305, -0.817735, -0.0614535},
	{-0.130788, -0.0309127, -0.990927},
	{-0.727726, 0.541064, -0.421523},
	{0.478744, 0.709134, 0.517622},
	{-0.373874, -0.881813, -0.287444},
	{0.398935, 0.831455, 0.386695},
	{-0.61147, -0.777674, -0.14604},
	{-0.195003, 0.964429, 0.178467},
	{0.0416087, 0.926467, -0.374049},
	{-0.0611025, -0.951451, 0.301675},
	{0.64528, 0.737659, 0.19868},
	{-0.613089, -0.767839, 0.185756},
	{0.0683425, 0.81611, -0.573853},
	{-0.510012, 0.795639, 0.326874},
	{0.474937, 0.878095, 0.0581754},
	{0.505896, 0.75, 0.42611},
	{-0.967407, 0.25, 0.0402959},
	{0.686116, -0.25, -0.683187},
	{-0.0303547, -0.75, 0.660741},
}
