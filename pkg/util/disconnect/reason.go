// Package disconnect enumerates the engine's disconnect reason
// classification. The values are a pass-through for network-layer
// code; no logic attaches to them here.
package disconnect

// Reason classifies why a connection ended.
type Reason int32

const (
	ReasonUnknown                                       Reason = 0
	ReasonCantConnectNoInternet                         Reason = 1
	ReasonNoPermissions                                 Reason = 2
	ReasonUnrecoverableError                            Reason = 3
	ReasonThirdPartyBlocked                             Reason = 4
	ReasonThirdPartyNoInternet                          Reason = 5
	ReasonThirdPartyBadIP                               Reason = 6
	ReasonThirdPartyNoServerOrServerLocked              Reason = 7
	ReasonVersionMismatch                               Reason = 8
	ReasonSkinIssue                                     Reason = 9
	ReasonInviteSessionNotFound                         Reason = 10
	ReasonEduLevelSettingsMissing                       Reason = 11
	ReasonLocalServerNotFound                           Reason = 12
	ReasonLegacyDisconnect                              Reason = 13
	ReasonUserLeaveGameAttempted                        Reason = 14
	ReasonPlatformLockedSkinsError                      Reason = 15
	ReasonRealmsWorldUnassigned                         Reason = 16
	ReasonRealmsServerCantConnect                       Reason = 17
	ReasonRealmsServerHidden                            Reason = 18
	ReasonRealmsServerDisabledBeta                      Reason = 19
	ReasonRealmsServerDisabled                          Reason = 20
	ReasonCrossPlatformDisabled                         Reason = 21
	ReasonCantConnect                                   Reason = 22
	ReasonSessionNotFound                               Reason = 23
	ReasonClientSettingsIncompatibleWithServer          Reason = 24
	ReasonServerFull                                    Reason = 25
	ReasonInvalidPlatformSkin                           Reason = 26
	ReasonEditionVersionMismatch                        Reason = 27
	ReasonEditionMismatch                               Reason = 28
	ReasonLevelNewerThanExeVersion                      Reason = 29
	ReasonNoFailOccurred                                Reason = 30
	ReasonBannedSkin                                    Reason = 31
	ReasonTimeout                                       Reason = 32
	ReasonServerNotFound                                Reason = 33
	ReasonOutdatedServer                                Reason = 34
	ReasonOutdatedClient                                Reason = 35
	ReasonNoPremiumPlatform                             Reason = 36
	ReasonMultiplayerDisabled                           Reason = 37
	ReasonNoWiFi                                        Reason = 38
	ReasonWorldCorruption                               Reason = 39
	ReasonNoReason                                      Reason = 40
	ReasonDisconnected                                  Reason = 41
	ReasonInvalidPlayer                                 Reason = 42
	ReasonLoggedInOtherLocation                         Reason = 43
	ReasonServerIdConflict                              Reason = 44
	ReasonNotAllowed                                    Reason = 45
	ReasonNotAuthenticated                              Reason = 46
	ReasonInvalidTenant                                 Reason = 47
	ReasonUnknownPacket                                 Reason = 48
	ReasonUnexpectedPacket                              Reason = 49
	ReasonInvalidCommandRequestPacket                   Reason = 50
	ReasonHostSuspended                                 Reason = 51
	ReasonLoginPacketNoRequest                          Reason = 52
	ReasonLoginPacketNoCert                             Reason = 53
	ReasonMissingClient                                 Reason = 54
	ReasonKicked                                        Reason = 55
	ReasonKickedForExploit                              Reason = 56
	ReasonKickedForIdle                                 Reason = 57
	ReasonResourcePackProblem                           Reason = 58
	ReasonIncompatiblePack                              Reason = 59
	ReasonOutOfStorage                                  Reason = 60
	ReasonInvalidLevel                                  Reason = 61
	ReasonDisconnectPacket_DEPRECATED                   Reason = 62
	ReasonBlockMismatch                                 Reason = 63
	ReasonInvalidHeights                                Reason = 64
	ReasonInvalidWidths                                 Reason = 65
	ReasonConnectionLost                                Reason = 66
	ReasonZombieConnection                              Reason = 67
	ReasonShutdown                                      Reason = 68
	ReasonReasonNotSet_DEPRECATED                       Reason = 69
	ReasonLoadingStateTimeout                           Reason = 70
	ReasonResourcePackLoadingFailed                     Reason = 71
	ReasonSearchingForSessionLoadingScreenFailed        Reason = 72
	ReasonNetherNetProtocolVersion                      Reason = 73
	ReasonSubsystemStatusError                          Reason = 74
	ReasonEmptyAuthFromDiscovery                        Reason = 75
	ReasonEmptyUrlFromDiscovery                         Reason = 76
	ReasonExpiredAuthFromDiscovery                      Reason = 77
	ReasonUnknownSignalServiceSignInFailure             Reason = 78
	ReasonXBLJoinLobbyFailure                           Reason = 79
	ReasonUnspecifiedClientInstanceDisconnection        Reason = 80
	ReasonNetherNetSessionNotFound                      Reason = 81
	ReasonNetherNetCreatePeerConnection                 Reason = 82
	ReasonNetherNetICE                                  Reason = 83
	ReasonNetherNetConnectRequest                       Reason = 84
	ReasonNetherNetConnectResponse                      Reason = 85
	ReasonNetherNetNegotiationTimeout                   Reason = 86
	ReasonNetherNetInactivityTimeout                    Reason = 87
	ReasonStaleConnectionBeingReplaced                  Reason = 88
	ReasonRealmsSessionNotFound_DEPRECATED              Reason = 89
	ReasonBadPacket                                     Reason = 90
	ReasonNetherNetFailedToCreateOffer                  Reason = 91
	ReasonNetherNetFailedToCreateAnswer                 Reason = 92
	ReasonNetherNetFailedToSetLocalDescription          Reason = 93
	ReasonNetherNetFailedToSetRemoteDescription         Reason = 94
	ReasonNetherNetNegotiationTimeoutWaitingForResponse Reason = 95
	ReasonNetherNetNegotiationTimeoutWaitingForAccept   Reason = 96
	ReasonNetherNetIncomingConnectionIgnored            Reason = 97
	ReasonNetherNetSignalingParsingFailure              Reason = 98
	ReasonNetherNetSignalingUnknownError                Reason = 99
	ReasonNetherNetSignalingUnicastDeliveryFailed       Reason = 100
	ReasonNetherNetSignalingBroadcastDeliveryFailed     Reason = 101
	ReasonNetherNetSignalingGenericDeliveryFailed       Reason = 102
	ReasonEditorMismatchEditorWorld                     Reason = 103
	ReasonEditorMismatchVanillaWorld                    Reason = 104
	ReasonWorldTransferNotPrimaryClient                 Reason = 105
	ReasonRequestServerShutdown                         Reason = 106
	ReasonClientGameSetupCancelled                      Reason = 107
	ReasonClientGameSetupFailed                         Reason = 108
	ReasonNoVenue                                       Reason = 109
	ReasonNetherNetSignalingSigninFailed                Reason = 110
	ReasonSessionAccessDenied                           Reason = 111
	ReasonServiceSigninIssue                            Reason = 112
	ReasonNetherNetNoSignalingChannel                   Reason = 113
	ReasonNetherNetNotLoggedIn                          Reason = 114
	ReasonNetherNetClientSignalingError                 Reason = 115
	ReasonSubClientLoginDisabled                        Reason = 116
)

var reasonNames = map[Reason]string{
	ReasonUnknown:                                       "Unknown",
	ReasonCantConnectNoInternet:                         "CantConnectNoInternet",
	ReasonNoPermissions:                                 "NoPermissions",
	ReasonUnrecoverableError:                            "UnrecoverableError",
	ReasonThirdPartyBlocked:                             "ThirdPartyBlocked",
	ReasonThirdPartyNoInternet:                          "ThirdPartyNoInternet",
	ReasonThirdPartyBadIP:                               "ThirdPartyBadIP",
	ReasonThirdPartyNoServerOrServerLocked:              "ThirdPartyNoServerOrServerLocked",
	ReasonVersionMismatch:                               "VersionMismatch",
	ReasonSkinIssue:                                     "SkinIssue",
	ReasonInviteSessionNotFound:                         "InviteSessionNotFound",
	ReasonEduLevelSettingsMissing:                       "EduLevelSettingsMissing",
	ReasonLocalServerNotFound:                           "LocalServerNotFound",
	ReasonLegacyDisconnect:                              "LegacyDisconnect",
	ReasonUserLeaveGameAttempted:                        "UserLeaveGameAttempted",
	ReasonPlatformLockedSkinsError:                      "PlatformLockedSkinsError",
	ReasonRealmsWorldUnassigned:                         "RealmsWorldUnassigned",
	ReasonRealmsServerCantConnect:                       "RealmsServerCantConnect",
	ReasonRealmsServerHidden:                            "RealmsServerHidden",
	ReasonRealmsServerDisabledBeta:                      "RealmsServerDisabledBeta",
	ReasonRealmsServerDisabled:                          "RealmsServerDisabled",
	ReasonCrossPlatformDisabled:                         "CrossPlatformDisabled",
	ReasonCantConnect:                                   "CantConnect",
	ReasonSessionNotFound:                               "SessionNotFound",
	ReasonClientSettingsIncompatibleWithServer:          "ClientSettingsIncompatibleWithServer",
	ReasonServerFull:                                    "ServerFull",
	ReasonInvalidPlatformSkin:                           "InvalidPlatformSkin",
	ReasonEditionVersionMismatch:                        "EditionVersionMismatch",
	ReasonEditionMismatch:                               "EditionMismatch",
	ReasonLevelNewerThanExeVersion:                      "LevelNewerThanExeVersion",
	ReasonNoFailOccurred:                                "NoFailOccurred",
	ReasonBannedSkin:                                    "BannedSkin",
	ReasonTimeout:                                       "Timeout",
	ReasonServerNotFound:                                "ServerNotFound",
	ReasonOutdatedServer:                                "OutdatedServer",
	ReasonOutdatedClient:                                "OutdatedClient",
	ReasonNoPremiumPlatform:                             "NoPremiumPlatform",
	ReasonMultiplayerDisabled:                           "MultiplayerDisabled",
	ReasonNoWiFi:                                        "NoWiFi",
	ReasonWorldCorruption:                               "WorldCorruption",
	ReasonNoReason:                                      "NoReason",
	ReasonDisconnected:                                  "Disconnected",
	ReasonInvalidPlayer:                                 "InvalidPlayer",
	ReasonLoggedInOtherLocation:                         "LoggedInOtherLocation",
	ReasonServerIdConflict:                              "ServerIdConflict",
	ReasonNotAllowed:                                    "NotAllowed",
	ReasonNotAuthenticated:                              "NotAuthenticated",
	ReasonInvalidTenant:                                 "InvalidTenant",
	ReasonUnknownPacket:                                 "UnknownPacket",
	ReasonUnexpectedPacket:                              "UnexpectedPacket",
	ReasonInvalidCommandRequestPacket:                   "InvalidCommandRequestPacket",
	ReasonHostSuspended:                                 "HostSuspended",
	ReasonLoginPacketNoRequest:                          "LoginPacketNoRequest",
	ReasonLoginPacketNoCert:                             "LoginPacketNoCert",
	ReasonMissingClient:                                 "MissingClient",
	ReasonKicked:                                        "Kicked",
	ReasonKickedForExploit:                              "KickedForExploit",
	ReasonKickedForIdle:                                 "KickedForIdle",
	ReasonResourcePackProblem:                           "ResourcePackProblem",
	ReasonIncompatiblePack:                              "IncompatiblePack",
	ReasonOutOfStorage:                                  "OutOfStorage",
	ReasonInvalidLevel:                                  "InvalidLevel",
	ReasonDisconnectPacket_DEPRECATED:                   "DisconnectPacket_DEPRECATED",
	ReasonBlockMismatch:                                 "BlockMismatch",
	ReasonInvalidHeights:                                "InvalidHeights",
	ReasonInvalidWidths:                                 "InvalidWidths",
	ReasonConnectionLost:                                "ConnectionLost",
	ReasonZombieConnection:                              "ZombieConnection",
	ReasonShutdown:                                      "Shutdown",
	ReasonReasonNotSet_DEPRECATED:                       "ReasonNotSet_DEPRECATED",
	ReasonLoadingStateTimeout:                           "LoadingStateTimeout",
	ReasonResourcePackLoadingFailed:                     "ResourcePackLoadingFailed",
	ReasonSearchingForSessionLoadingScreenFailed:        "SearchingForSessionLoadingScreenFailed",
	ReasonNetherNetProtocolVersion:                      "NetherNetProtocolVersion",
	ReasonSubsystemStatusError:                          "SubsystemStatusError",
	ReasonEmptyAuthFromDiscovery:                        "EmptyAuthFromDiscovery",
	ReasonEmptyUrlFromDiscovery:                         "EmptyUrlFromDiscovery",
	ReasonExpiredAuthFromDiscovery:                      "ExpiredAuthFromDiscovery",
	ReasonUnknownSignalServiceSignInFailure:             "UnknownSignalServiceSignInFailure",
	ReasonXBLJoinLobbyFailure:                           "XBLJoinLobbyFailure",
	ReasonUnspecifiedClientInstanceDisconnection:        "UnspecifiedClientInstanceDisconnection",
	ReasonNetherNetSessionNotFound:                      "NetherNetSessionNotFound",
	ReasonNetherNetCreatePeerConnection:                 "NetherNetCreatePeerConnection",
	ReasonNetherNetICE:                                  "NetherNetICE",
	ReasonNetherNetConnectRequest:                       "NetherNetConnectRequest",
	ReasonNetherNetConnectResponse:                      "NetherNetConnectResponse",
	ReasonNetherNetNegotiationTimeout:                   "NetherNetNegotiationTimeout",
	ReasonNetherNetInactivityTimeout:                    "NetherNetInactivityTimeout",
	ReasonStaleConnectionBeingReplaced:                  "StaleConnectionBeingReplaced",
	ReasonRealmsSessionNotFound_DEPRECATED:              "RealmsSessionNotFound_DEPRECATED",
	ReasonBadPacket:                                     "BadPacket",
	ReasonNetherNetFailedToCreateOffer:                  "NetherNetFailedToCreateOffer",
	ReasonNetherNetFailedToCreateAnswer:                 "NetherNetFailedToCreateAnswer",
	ReasonNetherNetFailedToSetLocalDescription:          "NetherNetFailedToSetLocalDescription",
	ReasonNetherNetFailedToSetRemoteDescription:         "NetherNetFailedToSetRemoteDescription",
	ReasonNetherNetNegotiationTimeoutWaitingForResponse: "NetherNetNegotiationTimeoutWaitingForResponse",
	ReasonNetherNetNegotiationTimeoutWaitingForAccept:   "NetherNetNegotiationTimeoutWaitingForAccept",
	ReasonNetherNetIncomingConnectionIgnored:            "NetherNetIncomingConnectionIgnored",
	ReasonNetherNetSignalingParsingFailure:              "NetherNetSignalingParsingFailure",
	ReasonNetherNetSignalingUnknownError:                "NetherNetSignalingUnknownError",
	ReasonNetherNetSignalingUnicastDeliveryFailed:       "NetherNetSignalingUnicastDeliveryFailed",
	ReasonNetherNetSignalingBroadcastDeliveryFailed:     "NetherNetSignalingBroadcastDeliveryFailed",
	ReasonNetherNetSignalingGenericDeliveryFailed:       "NetherNetSignalingGenericDeliveryFailed",
	ReasonEditorMismatchEditorWorld:                     "EditorMismatchEditorWorld",
	ReasonEditorMismatchVanillaWorld:                    "EditorMismatchVanillaWorld",
	ReasonWorldTransferNotPrimaryClient:                 "WorldTransferNotPrimaryClient",
	ReasonRequestServerShutdown:                         "RequestServerShutdown",
	ReasonClientGameSetupCancelled:                      "ClientGameSetupCancelled",
	ReasonClientGameSetupFailed:                         "ClientGameSetupFailed",
	ReasonNoVenue:                                       "NoVenue",
	ReasonNetherNetSignalingSigninFailed:                "NetherNetSignalingSigninFailed",
	ReasonSessionAccessDenied:                           "SessionAccessDenied",
	ReasonServiceSigninIssue:                            "ServiceSigninIssue",
	ReasonNetherNetNoSignalingChannel:                   "NetherNetNoSignalingChannel",
	ReasonNetherNetNotLoggedIn:                          "NetherNetNotLoggedIn",
	ReasonNetherNetClientSignalingError:                 "NetherNetClientSignalingError",
	ReasonSubClientLoginDisabled:                        "SubClientLoginDisabled",
}

// String returns the engine name of the reason,
// or "Unknown" for values outside the classification.
func (r Reason) String() string {
	if s, ok := reasonNames[r]; ok {
		return s
	}
	return "Unknown"
}
