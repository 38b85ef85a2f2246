// Copyright 2024-2025 NetCracker Technology Corporation
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package exception

const IncorrectParamType = "5"
const IncorrectParamTypeMsg = "$param parameter should be $type"

const EmptyParameter = "6"
const EmptyParameterMsg = "Parameter $param should not be empty"

const RequiredParamsMissing = "7"
const RequiredParamsMissingMsg = "Required parameters are missing: $params"

const BadRequestBody = "8"
const BadRequestBodyMsg = "Failed to decode body"

const InvalidParameterValue = "9"
const InvalidParameterValueMsg = "Value '$value' is not allowed for parameter $param"
const InvalidLimitMsg = "Value '$value' is not allowed for parameter limit. Allowed values are in range 1:$maxLimit"

const EndpointNotFound = "10"
const EndpointNotFoundMsg = "The requested URL $path was not found on the server"

const MethodNotAllowed = "11"
const MethodNotAllowedMsg = "The method $method is not allowed for the requested URL"

const UserNotFound = "20"
const UserNotFoundMsg = "User with id $userId not found"

const CharacterNotFound = "21"
const CharacterNotFoundMsg = "Character with id $characterId not found"

const PlanetNotFound = "22"
const PlanetNotFoundMsg = "Planet with id $planetId not found"

const FavoriteNotFound = "23"
const FavoriteNotFoundMsg = "Favorite with id $favoriteId not found"

const UsernameAlreadyTaken = "24"
const UsernameAlreadyTakenMsg = "Username $username is already taken"

const EmailAlreadyTaken = "25"
const EmailAlreadyTakenMsg = "Email $email is already taken"

const FavoriteTargetAmbiguous = "26"
const FavoriteTargetAmbiguousMsg = "Exactly one of character_id or planet_id should be set"

const PasswordTooLong = "27"
const PasswordTooLongMsg = "Password is too long, the limit is 72 bytes"

const InsufficientPrivileges = "30"
const InsufficientPrivilegesMsg = "You don't have enough privileges to perform this operation"

const PrincipalNotResolved = "31"
const PrincipalNotResolvedMsg = "Failed to resolve the acting user"

const InvalidCredentials = "32"
const InvalidCredentialsMsg = "Invalid credentials"

const SwapiUnavailable = "40"
const SwapiUnavailableMsg = "Failed to load $resource from SWAPI: $error"
