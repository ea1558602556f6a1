package blockchain

// landRegistryABI is the fixed interface of the deployed LandRegistry
// contract, reduced to the functions and events this service uses. The
// contract itself is an external collaborator; the record tuple layout and
// the status wire values 0/1/2 are part of its stable interface.
const landRegistryABI = `[
	{"type":"function","name":"adminPublicKey","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"string"}]},
	{"type":"function","name":"governmentOfficials","stateMutability":"view","inputs":[{"name":"","type":"address"}],"outputs":[{"name":"","type":"bool"}]},
	{"type":"function","name":"getLandById","stateMutability":"view","inputs":[{"name":"_landId","type":"uint256"}],"outputs":[{"name":"","type":"tuple","components":[
		{"name":"id","type":"uint256"},
		{"name":"ownerFullName","type":"string"},
		{"name":"plotNumber","type":"string"},
		{"name":"landSize","type":"uint256"},
		{"name":"gpsCoordinates","type":"string"},
		{"name":"encryptedTitleDeedHash","type":"string"},
		{"name":"status","type":"uint8"},
		{"name":"rejectionReason","type":"string"},
		{"name":"owner","type":"address"},
		{"name":"timestamp","type":"uint256"}]}]},
	{"type":"function","name":"getAllLands","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"tuple[]","components":[
		{"name":"id","type":"uint256"},
		{"name":"ownerFullName","type":"string"},
		{"name":"plotNumber","type":"string"},
		{"name":"landSize","type":"uint256"},
		{"name":"gpsCoordinates","type":"string"},
		{"name":"encryptedTitleDeedHash","type":"string"},
		{"name":"status","type":"uint8"},
		{"name":"rejectionReason","type":"string"},
		{"name":"owner","type":"address"},
		{"name":"timestamp","type":"uint256"}]}]},
	{"type":"function","name":"getLandsByOwner","stateMutability":"view","inputs":[{"name":"_owner","type":"address"}],"outputs":[{"name":"","type":"tuple[]","components":[
		{"name":"id","type":"uint256"},
		{"name":"ownerFullName","type":"string"},
		{"name":"plotNumber","type":"string"},
		{"name":"landSize","type":"uint256"},
		{"name":"gpsCoordinates","type":"string"},
		{"name":"encryptedTitleDeedHash","type":"string"},
		{"name":"status","type":"uint8"},
		{"name":"rejectionReason","type":"string"},
		{"name":"owner","type":"address"},
		{"name":"timestamp","type":"uint256"}]}]},
	{"type":"function","name":"registerLand","stateMutability":"nonpayable","inputs":[
		{"name":"_plotNumber","type":"string"},
		{"name":"_landSize","type":"uint256"},
		{"name":"_gpsCoordinates","type":"string"},
		{"name":"_encryptedTitleDeedHash","type":"string"},
		{"name":"_ownerFullName","type":"string"}],"outputs":[]},
	{"type":"function","name":"verifyLand","stateMutability":"nonpayable","inputs":[{"name":"_landId","type":"uint256"}],"outputs":[]},
	{"type":"function","name":"rejectLand","stateMutability":"nonpayable","inputs":[{"name":"_landId","type":"uint256"},{"name":"_reason","type":"string"}],"outputs":[]},
	{"type":"function","name":"generateProof","stateMutability":"nonpayable","inputs":[{"name":"_landId","type":"uint256"}],"outputs":[{"name":"","type":"bytes32"}]},
	{"type":"function","name":"verifyProof","stateMutability":"nonpayable","inputs":[{"name":"_proofHash","type":"bytes32"}],"outputs":[]},
	{"type":"event","name":"LandRegistered","anonymous":false,"inputs":[
		{"name":"id","type":"uint256","indexed":true},
		{"name":"plotNumber","type":"string","indexed":false},
		{"name":"owner","type":"address","indexed":true}]},
	{"type":"event","name":"LandVerified","anonymous":false,"inputs":[
		{"name":"id","type":"uint256","indexed":true},
		{"name":"plotNumber","type":"string","indexed":false},
		{"name":"official","type":"address","indexed":true}]},
	{"type":"event","name":"LandRejected","anonymous":false,"inputs":[
		{"name":"id","type":"uint256","indexed":true},
		{"name":"plotNumber","type":"string","indexed":false},
		{"name":"reason","type":"string","indexed":false},
		{"name":"official","type":"address","indexed":true}]},
	{"type":"event","name":"ProofGenerated","anonymous":false,"inputs":[
		{"name":"id","type":"uint256","indexed":true},
		{"name":"proofHash","type":"bytes32","indexed":false},
		{"name":"owner","type":"address","indexed":true}]},
	{"type":"event","name":"ProofUsed","anonymous":false,"inputs":[
		{"name":"id","type":"uint256","indexed":true},
		{"name":"proofHash","type":"bytes32","indexed":false},
		{"name":"verifier","type":"address","indexed":true}]}
]`
